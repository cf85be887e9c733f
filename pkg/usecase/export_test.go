package usecase

// Export unexported functions for testing
var (
	UserMessageForTest       = userMessage
	RepoCardsFragmentForTest = repoCardsFragment
)
