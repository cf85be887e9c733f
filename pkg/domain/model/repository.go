package model

// RepositorySummary is one entry of a user's public repository listing.
type RepositorySummary struct {
	Name            string
	Description     *string
	Fork            bool
	StargazersCount int
	HTMLURL         string
}

// DescriptionOr returns the description, or placeholder when it is absent or blank.
func (x *RepositorySummary) DescriptionOr(placeholder string) string {
	if x.Description == nil || *x.Description == "" {
		return placeholder
	}
	return *x.Description
}

// Stars never goes below zero.
func (x *RepositorySummary) Stars() int {
	if x.StargazersCount < 0 {
		return 0
	}
	return x.StargazersCount
}

// FilterForks returns the repositories that are not forks, in their original order.
func FilterForks(repos []*RepositorySummary) []*RepositorySummary {
	var result []*RepositorySummary
	for _, repo := range repos {
		if repo == nil || repo.Fork {
			continue
		}
		result = append(result, repo)
	}
	return result
}
