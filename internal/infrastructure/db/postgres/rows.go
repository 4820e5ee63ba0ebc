package postgres

import (
	"time"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
)

type userRow struct {
	ID           int64   `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username     string  `gorm:"column:username;size:100;not null"`
	Email        string  `gorm:"column:email;size:255;uniqueIndex;not null"`
	PasswordHash string  `gorm:"column:password;size:255;not null"`
	Height       float64 `gorm:"column:height"`
	Weight       float64 `gorm:"column:weight"`

	Workouts  []workoutRow   `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Nutrition []nutritionRow `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Goals     []goalRow      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (userRow) TableName() string { return "users" }

type activityRow struct {
	ID          int64   `gorm:"column:activity_id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:activity_name;size:100;not null"`
	Type        string  `gorm:"column:activity_type;size:100;not null"`
	Description *string `gorm:"column:description"`

	Workouts []workoutRow `gorm:"foreignKey:ActivityID;references:ID;constraint:OnDelete:RESTRICT"`
}

func (activityRow) TableName() string { return "fitness_activities" }

type workoutRow struct {
	ID             int64     `gorm:"column:workout_id;primaryKey;autoIncrement"`
	UserID         int64     `gorm:"column:user_id;not null;index"`
	ActivityID     int64     `gorm:"column:activity_id;not null;index"`
	Date           time.Time `gorm:"column:date;not null"`
	Duration       int64     `gorm:"column:duration;not null"`
	CaloriesBurned int64     `gorm:"column:calories_burned;not null"`
	Notes          *string   `gorm:"column:notes"`
}

func (workoutRow) TableName() string { return "workouts" }

type nutritionRow struct {
	ID               int64     `gorm:"column:nutrition_id;primaryKey;autoIncrement"`
	UserID           int64     `gorm:"column:user_id;not null;index"`
	Date             time.Time `gorm:"column:date;not null"`
	MealType         string    `gorm:"column:meal_type;size:50;not null"`
	FoodItem         string    `gorm:"column:food_item;size:255;not null"`
	CaloriesConsumed int64     `gorm:"column:calories_consumed;not null"`
	Protein          int64     `gorm:"column:protein;not null"`
	Carbohydrates    int64     `gorm:"column:carbohydrates;not null"`
	Fats             int64     `gorm:"column:fats;not null"`
}

func (nutritionRow) TableName() string { return "nutrition" }

type goalRow struct {
	ID              int64     `gorm:"column:goal_id;primaryKey;autoIncrement"`
	UserID          int64     `gorm:"column:user_id;not null;index"`
	GoalType        string    `gorm:"column:goal_type;size:100;not null"`
	GoalDescription string    `gorm:"column:goal_description;not null"`
	TargetValue     float64   `gorm:"column:target_value;not null"`
	Progress        float64   `gorm:"column:progress;not null"`
	Achieved        bool      `gorm:"column:achieved;not null"`
	StartDate       time.Time `gorm:"column:start_date;not null"`
	EndDate         time.Time `gorm:"column:end_date;not null"`
}

func (goalRow) TableName() string { return "goals" }

// --- row <-> domain ---

func toUserRow(u *domain.User) userRow {
	return userRow{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Height:       u.Height,
		Weight:       u.Weight,
	}
}

func (r *userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Height:       r.Height,
		Weight:       r.Weight,
	}
}

func toActivityRow(a *domain.FitnessActivity) activityRow {
	return activityRow{ID: a.ID, Name: a.Name, Type: a.Type, Description: a.Description}
}

func (r *activityRow) toDomain() *domain.FitnessActivity {
	return &domain.FitnessActivity{ID: r.ID, Name: r.Name, Type: r.Type, Description: r.Description}
}

func toWorkoutRow(w *domain.Workout) workoutRow {
	return workoutRow{
		ID:             w.ID,
		UserID:         w.UserID,
		ActivityID:     w.ActivityID,
		Date:           w.Date.UTC(),
		Duration:       w.Duration,
		CaloriesBurned: w.CaloriesBurned,
		Notes:          w.Notes,
	}
}

func (r *workoutRow) toDomain() *domain.Workout {
	return &domain.Workout{
		ID:             r.ID,
		UserID:         r.UserID,
		ActivityID:     r.ActivityID,
		Date:           r.Date.UTC(),
		Duration:       r.Duration,
		CaloriesBurned: r.CaloriesBurned,
		Notes:          r.Notes,
	}
}

func toNutritionRow(n *domain.Nutrition) nutritionRow {
	return nutritionRow{
		ID:               n.ID,
		UserID:           n.UserID,
		Date:             n.Date.UTC(),
		MealType:         n.MealType,
		FoodItem:         n.FoodItem,
		CaloriesConsumed: n.CaloriesConsumed,
		Protein:          n.Protein,
		Carbohydrates:    n.Carbohydrates,
		Fats:             n.Fats,
	}
}

func (r *nutritionRow) toDomain() *domain.Nutrition {
	return &domain.Nutrition{
		ID:               r.ID,
		UserID:           r.UserID,
		Date:             r.Date.UTC(),
		MealType:         r.MealType,
		FoodItem:         r.FoodItem,
		CaloriesConsumed: r.CaloriesConsumed,
		Protein:          r.Protein,
		Carbohydrates:    r.Carbohydrates,
		Fats:             r.Fats,
	}
}

func toGoalRow(g *domain.Goal) goalRow {
	return goalRow{
		ID:              g.ID,
		UserID:          g.UserID,
		GoalType:        g.GoalType,
		GoalDescription: g.GoalDescription,
		TargetValue:     g.TargetValue,
		Progress:        g.Progress,
		Achieved:        g.Achieved,
		StartDate:       g.StartDate.UTC(),
		EndDate:         g.EndDate.UTC(),
	}
}

func (r *goalRow) toDomain() *domain.Goal {
	return &domain.Goal{
		ID:              r.ID,
		UserID:          r.UserID,
		GoalType:        r.GoalType,
		GoalDescription: r.GoalDescription,
		TargetValue:     r.TargetValue,
		Progress:        r.Progress,
		Achieved:        r.Achieved,
		StartDate:       r.StartDate.UTC(),
		EndDate:         r.EndDate.UTC(),
	}
}
