package model

import "github.com/google/uuid"

// ID bertipe per entitas, supaya student id tidak bisa tertukar dengan
// course id di signature service (salah pasang = error compile).

type StudentID uuid.UUID

func ParseStudentID(s string) (StudentID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return StudentID(uuid.Nil), err
	}
	return StudentID(u), nil
}

func (id StudentID) UUID() uuid.UUID { return uuid.UUID(id) }
func (id StudentID) String() string  { return uuid.UUID(id).String() }

type CourseID uuid.UUID

func ParseCourseID(s string) (CourseID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return CourseID(uuid.Nil), err
	}
	return CourseID(u), nil
}

func (id CourseID) UUID() uuid.UUID { return uuid.UUID(id) }
func (id CourseID) String() string  { return uuid.UUID(id).String() }

type ResultID uuid.UUID

func (id ResultID) UUID() uuid.UUID { return uuid.UUID(id) }
func (id ResultID) String() string  { return uuid.UUID(id).String() }
