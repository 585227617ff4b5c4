package gallery

// Likes is the side table of like state, keyed by record ID. It is only
// written by previews.
type Likes struct {
	liked map[int]bool
}

// NewLikes returns an empty table.
func NewLikes() *Likes {
	return &Likes{liked: make(map[int]bool)}
}

// Like marks id as liked.
func (l *Likes) Like(id int) { l.liked[id] = true }

// Dislike clears a like on id while keeping the record known to the table.
func (l *Likes) Dislike(id int) { l.liked[id] = false }

// Unset forgets id entirely.
func (l *Likes) Unset(id int) { delete(l.liked, id) }

// Liked reports whether id is currently liked.
func (l *Likes) Liked(id int) bool { return l.liked[id] }

// Toggle flips the like on id and returns the new state.
func (l *Likes) Toggle(id int) bool {
	if l.liked[id] {
		l.Dislike(id)
		return false
	}
	l.Like(id)
	return true
}
