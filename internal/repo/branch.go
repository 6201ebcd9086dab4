package repo

// Branch creates a new branch at the current head (spec §4.5 branch).
func (r *Repository) Branch(name string) error {
	head, err := r.Refs.HeadCommit()
	if err != nil {
		return err
	}
	return r.Refs.CreateBranch(name, head)
}

// RmBranch deletes a branch (spec §4.5 rm-branch).
func (r *Repository) RmBranch(name string) error {
	return r.Refs.DeleteBranch(name)
}
