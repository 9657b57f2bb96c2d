package config

// Key identifies a single stored setting.
type Key string

const (
	// KeyRepoPath is the absolute path to the idea repository.
	KeyRepoPath Key = "repo_path"

	// KeyBranchName is the branch new ideas are committed to.
	KeyBranchName Key = "branch_name"
)

func (k Key) String() string {
	return string(k)
}
