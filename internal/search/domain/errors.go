package domain

import (
	"errors"
	"fmt"
)

// ValidationError は利用者が修正可能な入力不備を表す。HTTP では 400 に写像される。
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RepositoryError はストレージ到達不能やクエリ失敗を表す。呼び出し側には汎用的なサーバーエラーとして返す。
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// WrapRepositoryError tags err as a RepositoryError for op. nil stays nil and
// errors that already carry a RepositoryError are returned unchanged.
func WrapRepositoryError(op string, err error) error {
	if err == nil {
		return nil
	}
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return err
	}
	return &RepositoryError{Op: op, Err: err}
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsRepositoryError reports whether err carries a RepositoryError.
func IsRepositoryError(err error) bool {
	var target *RepositoryError
	return errors.As(err, &target)
}
