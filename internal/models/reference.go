package models

// NamePair maps a non-canonical spelling encountered in a feed to the
// canonical replacement recorded in playerstats.
type NamePair struct {
	Old string `db:"old_name"`
	New string `db:"new_name"`
}

// SimilarPair is a pair of names within the near-duplicate edit-distance
// threshold that has been reviewed and approved as genuinely distinct.
type SimilarPair struct {
	Name1 string `db:"name1"`
	Name2 string `db:"name2"`
}
