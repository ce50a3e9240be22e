package grading

import "math"

/* =========================================================
   Banding nilai → (grade, grade_point), skala 0-10.
   Batas bawah inklusif, dievaluasi dari band tertinggi.
   ========================================================= */

func Calculate(marks float64) (grade string, gradePoint float64) {
	switch {
	case marks >= 90:
		return "A+", 10.0
	case marks >= 80:
		return "A", 9.0
	case marks >= 70:
		return "B", 8.0
	case marks >= 60:
		return "C", 7.0
	case marks >= 50:
		return "D", 6.0
	case marks >= 40:
		return "E", 5.0
	default:
		return "F", 0.0
	}
}

// RoundGPA: pembulatan GPA ke 2 desimal.
func RoundGPA(gpa float64) float64 {
	return math.Round(gpa*100) / 100
}
