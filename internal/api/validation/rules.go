package validation

// Rule sets per route.

var Login = RuleSet{
	Field("email", "email", "Invalid email address"),
	Field("password", "min=6", "Password must be at least 6 characters"),
}

var Register = RuleSet{
	Field("username", "min=3", "Username must be at least 3 characters"),
	Field("email", "email", "Invalid email address"),
	Field("password", "min=6", "Password must be at least 6 characters"),
	Field("height", "numeric", "Invalid height"),
	Field("weight", "numeric", "Invalid weight"),
}

var UpdateProfile = RuleSet{
	Param("userId", "int", "Invalid userId parameter"),
	Field("username", "min=3", "Username must be at least 3 characters"),
	Field("email", "email", "Invalid email address"),
	Field("password", "min=6", "Password must be at least 6 characters").IfPresent(),
	Field("newPassword", "min=6", "New password must be at least 6 characters").IfPresent(),
	Field("height", "numeric", "Invalid height"),
	Field("weight", "numeric", "Invalid weight"),
}

var activityBody = RuleSet{
	Field("activityName", "min=3", "Activity name must be at least 3 characters"),
	Field("activityType", "min=3", "Activity type must be at least 3 characters"),
	Field("description", "min=5", "Description must be at least 5 characters").IfPresent(),
}

var workoutBody = RuleSet{
	Field("userId", "int", "Invalid userId"),
	Field("activityId", "int", "Invalid activityId"),
	Field("date", "iso8601", "Invalid date format"),
	Field("duration", "int", "Invalid duration"),
	Field("caloriesBurned", "int", "Invalid caloriesBurned"),
	Field("notes", "string", "Notes must be a string").IfPresent(),
}

var nutritionBody = RuleSet{
	Field("userId", "int", "Invalid userId"),
	Field("date", "iso8601", "Invalid date format"),
	Field("mealType", "string", "Invalid mealType"),
	Field("foodItem", "string", "Invalid foodItem"),
	Field("caloriesConsumed", "int", "Invalid caloriesConsumed"),
	Field("protein", "int", "Invalid protein"),
	Field("carbohydrates", "int", "Invalid carbohydrates"),
	Field("fats", "int", "Invalid fats"),
}

var goalBody = RuleSet{
	Field("userId", "int", "Invalid userId"),
	Field("goalType", "string", "Invalid goalType"),
	Field("goalDescription", "string", "Invalid goalDescription"),
	Field("targetValue", "numeric", "Invalid targetValue"),
	Field("progress", "numeric", "Invalid progress"),
	Field("achieved", "boolean", "Invalid achieved"),
	Field("startDate", "iso8601", "Invalid startDate format"),
	Field("endDate", "iso8601", "Invalid endDate format"),
}

var (
	CreateActivity = activityBody
	UpdateActivity = withID("activityId", activityBody)

	CreateWorkout = workoutBody
	UpdateWorkout = withID("workoutId", workoutBody)

	CreateNutrition = nutritionBody
	UpdateNutrition = withID("nutritionId", nutritionBody)

	CreateGoal = goalBody
	UpdateGoal = withID("goalId", goalBody)
)

// ID validates a single integer path parameter.
func ID(param string) RuleSet {
	return RuleSet{idRule(param)}
}

func idRule(param string) Rule {
	return Param(param, "int", "Invalid "+param+" parameter")
}

func withID(param string, body RuleSet) RuleSet {
	rules := make(RuleSet, 0, len(body)+1)
	rules = append(rules, idRule(param))
	return append(rules, body...)
}
