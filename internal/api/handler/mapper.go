package handler

import (
	"github.com/kukuhtri1999/BodySync/internal/api/validation"
	"github.com/kukuhtri1999/BodySync/internal/core/ports"
)

func toRegisterInput(in *validation.Input) ports.RegisterInput {
	return ports.RegisterInput{
		Username: in.String("username"),
		Email:    in.String("email"),
		Password: in.String("password"),
		Height:   in.Float("height"),
		Weight:   in.Float("weight"),
	}
}

func toUpdateProfileInput(in *validation.Input) ports.UpdateProfileInput {
	return ports.UpdateProfileInput{
		UserID:          in.ParamInt("userId"),
		Username:        in.String("username"),
		Email:           in.String("email"),
		CurrentPassword: in.String("password"),
		NewPassword:     in.String("newPassword"),
		Height:          in.Float("height"),
		Weight:          in.Float("weight"),
	}
}

func toActivityInput(in *validation.Input, key string) ports.ActivityInput {
	return ports.ActivityInput{
		Name:           in.String("activityName"),
		Type:           in.String("activityType"),
		Description:    in.OptString("description"),
		IdempotencyKey: key,
	}
}

func toWorkoutInput(in *validation.Input, key string) ports.WorkoutInput {
	return ports.WorkoutInput{
		UserID:         in.Int("userId"),
		ActivityID:     in.Int("activityId"),
		Date:           in.Time("date"),
		Duration:       in.Int("duration"),
		CaloriesBurned: in.Int("caloriesBurned"),
		Notes:          in.OptString("notes"),
		IdempotencyKey: key,
	}
}

func toNutritionInput(in *validation.Input, key string) ports.NutritionInput {
	return ports.NutritionInput{
		UserID:           in.Int("userId"),
		Date:             in.Time("date"),
		MealType:         in.String("mealType"),
		FoodItem:         in.String("foodItem"),
		CaloriesConsumed: in.Int("caloriesConsumed"),
		Protein:          in.Int("protein"),
		Carbohydrates:    in.Int("carbohydrates"),
		Fats:             in.Int("fats"),
		IdempotencyKey:   key,
	}
}

func toGoalInput(in *validation.Input, key string) ports.GoalInput {
	return ports.GoalInput{
		UserID:          in.Int("userId"),
		GoalType:        in.String("goalType"),
		GoalDescription: in.String("goalDescription"),
		TargetValue:     in.Float("targetValue"),
		Progress:        in.Float("progress"),
		Achieved:        in.Bool("achieved"),
		StartDate:       in.Time("startDate"),
		EndDate:         in.Time("endDate"),
		IdempotencyKey:  key,
	}
}
