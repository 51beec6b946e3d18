package auth

type RegisterInput struct {
	Email    string
	Name     string
	Surname  string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type RegisterFCMTokenInput struct {
	Token string
}

type TokenOutput struct {
	Token string
}
