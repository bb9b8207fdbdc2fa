package data

import "fmt"

type MuscleGroup struct {
	Name          string
	ExerciseCount int
}

// Caption is the supporting line shown under a group name.
func (g MuscleGroup) Caption() string {
	return fmt.Sprintf("%d Exercises", g.ExerciseCount)
}

type Exercise struct {
	Name   string
	Sets   int
	Reps   int
	Weight int
	Unit   string // "lbs", "kg"
}

// Prescription renders the set/rep/load line, e.g. "4 sets x 6 reps • 105 lbs".
func (e Exercise) Prescription() string {
	return fmt.Sprintf("%d sets x %d reps • %d %s", e.Sets, e.Reps, e.Weight, e.Unit)
}

func (e Exercise) Summary() string {
	return e.Name + " • " + e.Prescription()
}

// Plan is everything the workout screen displays.
type Plan struct {
	Focus     string
	Fatigue   float64 // 0..1
	Groups    []MuscleGroup
	Exercises []Exercise
}

var sampleGroups = [...]MuscleGroup{
	{Name: "Chest & Triceps", ExerciseCount: 5},
	{Name: "Back & Biceps", ExerciseCount: 5},
	{Name: "Legs", ExerciseCount: 5},
}

var sampleExercises = [...]Exercise{
	{Name: "Bench Press", Sets: 4, Reps: 6, Weight: 105, Unit: "lbs"},
	{Name: "Cable Tricep Pushdown", Sets: 4, Reps: 6, Weight: 60, Unit: "lbs"},
	{Name: "Seated Dumbbell Shoulder Press", Sets: 4, Reps: 6, Weight: 35, Unit: "lbs"},
	{Name: "Lateral Raises", Sets: 4, Reps: 12, Weight: 10, Unit: "lbs"},
	{Name: "Assisted Dips", Sets: 4, Reps: 6, Weight: 40, Unit: "lbs"},
}

// SamplePlan returns a fresh copy of the built-in workout so callers can't
// mutate the shared content.
func SamplePlan() Plan {
	groups := sampleGroups
	exercises := sampleExercises
	return Plan{
		Focus:     "Chest",
		Fatigue:   0.45,
		Groups:    groups[:],
		Exercises: exercises[:],
	}
}
