package utils

import (
	"context"

	"turftrack/pkg/contextkeys"
	apperrors "turftrack/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

func GetUserNameFromCtx(ctx context.Context) (string, error) {
	name, ok := ctx.Value(contextkeys.UserNameKey).(string)
	if !ok {
		return "", apperrors.ErrUserIDNotFoundInContext
	}
	return name, nil
}
