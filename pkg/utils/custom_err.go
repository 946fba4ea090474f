package utils

import "errors"

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrTourNotFound        = errors.New("tour not found")
	ErrGuideNotFound       = errors.New("guide not found")
	ErrBlogPostNotFound    = errors.New("blog post not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrAlreadySubscribed   = errors.New("email already subscribed")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrStoreFault          = errors.New("storage fault")
)
