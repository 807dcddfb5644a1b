// Package catalog holds the built-in exercise library used to seed an empty
// exercises collection.
package catalog

import (
	"context"
	"fmt"

	"alcyxob/fitness-recommender/internal/domain"
	"alcyxob/fitness-recommender/internal/logger"
	"alcyxob/fitness-recommender/internal/repository"
)

// Exercises returns a fresh copy of the built-in library in ID order.
func Exercises() []domain.Exercise {
	out := make([]domain.Exercise, len(library))
	for i, ex := range library {
		ex.Tags = append([]string(nil), ex.Tags...)
		ex.Steps = append([]string(nil), ex.Steps...)
		out[i] = ex
	}
	return out
}

// Seed writes the built-in library when the catalog is empty. It reports
// whether anything was written.
func Seed(ctx context.Context, repo repository.ExerciseRepository, log *logger.Logger) (bool, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count exercises: %w", err)
	}
	if n > 0 {
		log.Debug("Exercise catalog already populated", "count", n)
		return false, nil
	}

	for _, ex := range Exercises() {
		ex := ex
		if err := repo.Upsert(ctx, &ex); err != nil {
			return false, fmt.Errorf("seed exercise %d: %w", ex.ID, err)
		}
	}
	log.Info("Seeded exercise catalog", "count", len(library))
	return true, nil
}

var library = []domain.Exercise{
	{
		ID:       1,
		Name:     "Bench Press",
		Category: domain.CategoryGym,
		Tags:     []string{"chest", "triceps"},
		Sets:     "4 sets of 8-12 reps",
		Steps: []string{
			"Lie on the bench with your eyes under the bar.",
			"Grab the bar with a medium-width grip.",
			"Unrack the bar by straightening your arms.",
			"Lower the bar to your mid-chest.",
			"Press the bar back up until your arms are straight.",
		},
	},
	{
		ID:       2,
		Name:     "Incline Dumbbell Press",
		Category: domain.CategoryGym,
		Tags:     []string{"chest", "shoulders"},
		Sets:     "3 sets of 10-12 reps",
		Steps: []string{
			"Set the bench to a 30-45 degree incline.",
			"Sit back and lift dumbbells to shoulder height.",
			"Press the dumbbells up until arms are extended.",
			"Lower slowly back to shoulder height.",
		},
	},
	{
		ID:       3,
		Name:     "Cable Flyes",
		Category: domain.CategoryGym,
		Tags:     []string{"chest"},
		Sets:     "3 sets of 12-15 reps",
		Steps: []string{
			"Stand in the center of a cable machine.",
			"Grab the handles with arms extended.",
			"Bring hands together in front of your chest.",
			"Slowly return to the starting position.",
		},
	},
	{
		ID:       4,
		Name:     "Deadlift",
		Category: domain.CategoryGym,
		Tags:     []string{"back", "legs"},
		Sets:     "4 sets of 6-8 reps",
		Steps: []string{
			"Stand with feet hip-width apart, bar over midfoot.",
			"Bend at hips and knees, grip the bar.",
			"Keep your back flat, chest up.",
			"Drive through your heels to stand up.",
			"Lower the bar back down with control.",
		},
	},
	{
		ID:       5,
		Name:     "Pull-Ups",
		Category: domain.CategoryGym,
		Tags:     []string{"back", "biceps"},
		Sets:     "3 sets of 8-10 reps",
		Steps: []string{
			"Grab the bar with an overhand grip, hands shoulder-width apart.",
			"Hang with arms fully extended.",
			"Pull yourself up until your chin is over the bar.",
			"Lower yourself back down with control.",
		},
	},
	{
		ID:       6,
		Name:     "Barbell Row",
		Category: domain.CategoryGym,
		Tags:     []string{"back"},
		Sets:     "4 sets of 8-10 reps",
		Steps: []string{
			"Bend at the hips, keeping your back flat.",
			"Grab the barbell with an overhand grip.",
			"Pull the bar to your lower chest.",
			"Lower the bar back down slowly.",
		},
	},
	{
		ID:       7,
		Name:     "Squats",
		Category: domain.CategoryGym,
		Tags:     []string{"legs", "core"},
		Sets:     "4 sets of 8-12 reps",
		Steps: []string{
			"Stand with feet shoulder-width apart, bar on upper back.",
			"Brace your core and keep chest up.",
			"Bend knees and hips to lower down.",
			"Go until thighs are parallel to the floor.",
			"Drive through heels to stand back up.",
		},
	},
	{
		ID:       8,
		Name:     "Leg Press",
		Category: domain.CategoryGym,
		Tags:     []string{"legs"},
		Sets:     "3 sets of 10-12 reps",
		Steps: []string{
			"Sit in the leg press machine.",
			"Place feet shoulder-width apart on the platform.",
			"Lower the platform by bending your knees.",
			"Push back up without locking your knees.",
		},
	},
	{
		ID:       9,
		Name:     "Lunges",
		Category: domain.CategoryGym,
		Tags:     []string{"legs"},
		Sets:     "3 sets of 12 reps per leg",
		Steps: []string{
			"Stand tall with feet together.",
			"Step forward with one leg.",
			"Lower your body until both knees are at 90 degrees.",
			"Push back to starting position.",
			"Repeat with the other leg.",
		},
	},
	{
		ID:       10,
		Name:     "Overhead Press",
		Category: domain.CategoryGym,
		Tags:     []string{"shoulders"},
		Sets:     "4 sets of 8-10 reps",
		Steps: []string{
			"Stand with feet shoulder-width apart.",
			"Hold the barbell at shoulder height.",
			"Press the bar overhead until arms are locked.",
			"Lower the bar back to shoulder height.",
		},
	},
	{
		ID:       11,
		Name:     "Lateral Raises",
		Category: domain.CategoryGym,
		Tags:     []string{"shoulders"},
		Sets:     "3 sets of 12-15 reps",
		Steps: []string{
			"Stand with dumbbells at your sides.",
			"Raise arms out to the sides until shoulder height.",
			"Keep a slight bend in your elbows.",
			"Lower slowly back down.",
		},
	},
	{
		ID:       12,
		Name:     "Bicep Curls",
		Category: domain.CategoryGym,
		Tags:     []string{"arms", "biceps"},
		Sets:     "3 sets of 10-12 reps",
		Steps: []string{
			"Stand with dumbbells at your sides, palms facing forward.",
			"Curl the weights up toward your shoulders.",
			"Squeeze at the top.",
			"Lower slowly back down.",
		},
	},
	{
		ID:       13,
		Name:     "Tricep Pushdowns",
		Category: domain.CategoryGym,
		Tags:     []string{"arms", "triceps"},
		Sets:     "3 sets of 12-15 reps",
		Steps: []string{
			"Stand at a cable machine with a straight bar attachment.",
			"Grab the bar with an overhand grip.",
			"Push the bar down until arms are fully extended.",
			"Slowly return to the starting position.",
		},
	},
	{
		ID:       14,
		Name:     "Skull Crushers",
		Category: domain.CategoryGym,
		Tags:     []string{"arms", "triceps"},
		Sets:     "3 sets of 10-12 reps",
		Steps: []string{
			"Lie on a bench holding an EZ bar above your chest.",
			"Lower the bar toward your forehead by bending elbows.",
			"Keep upper arms stationary.",
			"Extend arms back to the starting position.",
		},
	},
	{
		ID:       15,
		Name:     "Plank",
		Category: domain.CategoryGym,
		Tags:     []string{"core"},
		Sets:     "3 sets of 45-60 seconds",
		Steps: []string{
			"Get into a push-up position on your forearms.",
			"Keep your body in a straight line from head to heels.",
			"Engage your core and hold.",
			"Don't let your hips sag or pike up.",
		},
	},
	{
		ID:       16,
		Name:     "Russian Twists",
		Category: domain.CategoryGym,
		Tags:     []string{"core"},
		Sets:     "3 sets of 20 reps",
		Steps: []string{
			"Sit on the floor with knees bent.",
			"Lean back slightly, keeping your back straight.",
			"Hold a weight with both hands.",
			"Twist your torso to touch the weight to each side.",
		},
	},
	{
		ID:       17,
		Name:     "Running",
		Category: domain.CategoryCardio,
		Tags:     []string{"endurance", "full body"},
		Sets:     "30-45 minutes",
		Steps: []string{
			"Warm up with 5 minutes of brisk walking.",
			"Start jogging at a comfortable pace.",
			"Maintain a steady breathing rhythm.",
			"Gradually increase speed if comfortable.",
			"Cool down with 5 minutes of walking.",
		},
	},
	{
		ID:       18,
		Name:     "Jump Rope",
		Category: domain.CategoryCardio,
		Tags:     []string{"endurance", "coordination"},
		Sets:     "3 sets of 3 minutes",
		Steps: []string{
			"Hold the rope handles at hip height.",
			"Swing the rope over your head.",
			"Jump with both feet just high enough to clear the rope.",
			"Land softly on the balls of your feet.",
			"Keep your elbows close to your body.",
		},
	},
	{
		ID:       19,
		Name:     "Cycling",
		Category: domain.CategoryCardio,
		Tags:     []string{"endurance", "legs"},
		Sets:     "30-60 minutes",
		Steps: []string{
			"Adjust the seat height so your leg is slightly bent at the bottom.",
			"Start pedaling at a moderate pace.",
			"Add resistance for intervals.",
			"Maintain an upright posture.",
			"Cool down with 5 minutes of easy pedaling.",
		},
	},
	{
		ID:       20,
		Name:     "Burpees",
		Category: domain.CategoryCardio,
		Tags:     []string{"full body", "HIIT"},
		Sets:     "3 sets of 15 reps",
		Steps: []string{
			"Stand with feet shoulder-width apart.",
			"Drop into a squat and place hands on the floor.",
			"Jump your feet back into a plank position.",
			"Do a push-up.",
			"Jump your feet forward to your hands.",
			"Explode upward into a jump with arms overhead.",
		},
	},
	{
		ID:       21,
		Name:     "Mountain Climbers",
		Category: domain.CategoryCardio,
		Tags:     []string{"core", "HIIT"},
		Sets:     "3 sets of 30 seconds",
		Steps: []string{
			"Start in a plank position.",
			"Drive one knee toward your chest.",
			"Quickly switch legs.",
			"Keep your hips low and core engaged.",
			"Move as fast as you can while maintaining form.",
		},
	},
	{
		ID:       22,
		Name:     "Rowing Machine",
		Category: domain.CategoryCardio,
		Tags:     []string{"full body", "endurance"},
		Sets:     "20-30 minutes",
		Steps: []string{
			"Sit on the rower and strap your feet in.",
			"Grab the handle with an overhand grip.",
			"Push with your legs first, then lean back slightly.",
			"Pull the handle to your lower chest.",
			"Reverse the motion: extend arms, lean forward, bend knees.",
		},
	},
}
