package domain

// UpdateArticleAction is a bulk state change applied to a set of
// articles.
type UpdateArticleAction string

const (
	ActionDoNothing        UpdateArticleAction = "DO_NOTHING"
	ActionMarkAsRead       UpdateArticleAction = "MARK_AS_READ"
	ActionMarkAsUnread     UpdateArticleAction = "MARK_AS_UNREAD"
	ActionMarkAsFavorite   UpdateArticleAction = "MARK_AS_FAVORITE"
	ActionUnmarkAsFavorite UpdateArticleAction = "UNMARK_AS_FAVORITE"
	ActionMarkAsForLater   UpdateArticleAction = "MARK_AS_FOR_LATER"
	ActionUnmarkAsForLater UpdateArticleAction = "UNMARK_AS_FOR_LATER"
	ActionMarkAsOpened     UpdateArticleAction = "MARK_AS_OPENED"
)

// Valid reports whether the action is a known one.
func (a UpdateArticleAction) Valid() bool {
	switch a {
	case ActionDoNothing, ActionMarkAsRead, ActionMarkAsUnread,
		ActionMarkAsFavorite, ActionUnmarkAsFavorite,
		ActionMarkAsForLater, ActionUnmarkAsForLater, ActionMarkAsOpened:
		return true
	default:
		return false
	}
}
