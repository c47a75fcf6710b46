package util

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrRequestExists   = errors.New("friend request already exists")
	ErrRequestNotFound = errors.New("friend request not found")
	ErrAlreadyLiked    = errors.New("user already liked this post")
	ErrLikeNotFound    = errors.New("like not found for this user and post")
)
