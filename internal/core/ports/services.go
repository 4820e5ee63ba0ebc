package ports

import (
	"context"
	"time"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
)

// RegisterInput carries a new account's details.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Height   float64
	Weight   float64
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// UpdateProfileInput replaces a user's profile. CurrentPassword must match the
// stored hash whenever it is set, and is mandatory when NewPassword is set.
type UpdateProfileInput struct {
	UserID          int64
	Username        string
	Email           string
	CurrentPassword string
	NewPassword     string
	Height          float64
	Weight          float64
}

type UserService interface {
	List(ctx context.Context) ([]domain.UserSummary, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, in UpdateProfileInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// ActivityInput carries the mutable fields of a fitness activity.
type ActivityInput struct {
	Name           string
	Type           string
	Description    *string
	IdempotencyKey string
}

// Create methods report replayed=true when IdempotencyKey matched an earlier
// request and the stored record is returned unchanged.

type ActivityService interface {
	List(ctx context.Context) ([]domain.FitnessActivity, error)
	Get(ctx context.Context, id int64) (*domain.FitnessActivity, error)
	Create(ctx context.Context, in ActivityInput) (activity *domain.FitnessActivity, replayed bool, err error)
	Update(ctx context.Context, id int64, in ActivityInput) (*domain.FitnessActivity, error)
	Delete(ctx context.Context, id int64) error
}

type WorkoutInput struct {
	UserID         int64
	ActivityID     int64
	Date           time.Time
	Duration       int64
	CaloriesBurned int64
	Notes          *string
	IdempotencyKey string
}

type WorkoutService interface {
	List(ctx context.Context) ([]domain.Workout, error)
	Get(ctx context.Context, id int64) (*domain.Workout, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Workout, error)
	ListByActivity(ctx context.Context, activityID int64) ([]domain.Workout, error)
	Create(ctx context.Context, in WorkoutInput) (workout *domain.Workout, replayed bool, err error)
	Update(ctx context.Context, id int64, in WorkoutInput) (*domain.Workout, error)
	Delete(ctx context.Context, id int64) error
}

type NutritionInput struct {
	UserID           int64
	Date             time.Time
	MealType         string
	FoodItem         string
	CaloriesConsumed int64
	Protein          int64
	Carbohydrates    int64
	Fats             int64
	IdempotencyKey   string
}

type NutritionService interface {
	List(ctx context.Context) ([]domain.Nutrition, error)
	Get(ctx context.Context, id int64) (*domain.Nutrition, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Nutrition, error)
	Create(ctx context.Context, in NutritionInput) (record *domain.Nutrition, replayed bool, err error)
	Update(ctx context.Context, id int64, in NutritionInput) (*domain.Nutrition, error)
	Delete(ctx context.Context, id int64) error
}

type GoalInput struct {
	UserID          int64
	GoalType        string
	GoalDescription string
	TargetValue     float64
	Progress        float64
	Achieved        bool
	StartDate       time.Time
	EndDate         time.Time
	IdempotencyKey  string
}

type GoalService interface {
	List(ctx context.Context) ([]domain.Goal, error)
	Get(ctx context.Context, id int64) (*domain.Goal, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Goal, error)
	Create(ctx context.Context, in GoalInput) (goal *domain.Goal, replayed bool, err error)
	Update(ctx context.Context, id int64, in GoalInput) (*domain.Goal, error)
	Delete(ctx context.Context, id int64) error
}
