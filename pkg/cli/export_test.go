package cli

var (
	ParseGitHubOwnerForTest = parseGitHubOwner
	WritePageFileForTest    = writePageFile
	ExportPageForTest       = exportPage
)
