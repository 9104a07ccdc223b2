package panel

const (
	msgFillAllFields   = "Please fill in all fields."
	msgAccountCreated  = "Account created successfully! You can now sign in."
	msgLoginSuccessful = "Login successful!"
	msgWrongPassword   = "Password is incorrect. Please try again."
	msgUserNotFound    = "User not found. Please sign up."
	msgEnterEmail      = "Please enter your email."
	msgEmailNotFound   = "Email not found. Please sign up first."
	msgEnterNewPass    = "Enter a new password:"
	msgPasswordUpdated = "Password updated successfully! Please sign in with your new password."
	msgSomethingWrong  = "Something went wrong. Please try again."
)
