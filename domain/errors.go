package domain

import "errors"

var (
	// ユーザー関連エラー
	ErrInvalidUserContext = errors.New("invalid user context")

	// 記事関連エラー
	ErrArticleNotFound      = errors.New("article not found")
	ErrArticleAlreadyExists = errors.New("article already exists")

	// リーディングリスト関連エラー
	ErrReadingListNotFound      = errors.New("reading list not found")
	ErrCannotDeleteDefaultList  = errors.New("cannot delete default reading list")
	ErrReadingListAlreadyExists = errors.New("reading list already exists")

	// タグ関連エラー
	ErrTagNotFound = errors.New("tag not found")
)
