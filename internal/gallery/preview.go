package gallery

import "github.com/five82/pixwall/internal/photo"

// Target is the part of a preview that received a click.
type Target int

const (
	TargetOther Target = iota
	TargetLikes
	TargetMedia
)

// View is what a preview shows for its record.
type View struct {
	Record  photo.Record
	Source  string // URL loaded into the overlay
	Poster  string // video poster frame, empty for images
	Likes   int
	Liked   bool
	Video   bool
	Playing bool
}

// Preview is the gallery's presentation of a single record.
type Preview interface {
	Render() View
	// Destroy detaches the preview and forgets the record's like state.
	Destroy()
	HandleClick(target Target)
}

// NewPreview picks the preview variant for rec.
func NewPreview(rec photo.Record, likes *Likes) Preview {
	if rec.IsVideo {
		return &VideoPreview{rec: rec, likes: likes}
	}
	return &ImagePreview{rec: rec, likes: likes}
}

// ImagePreview shows a still photo.
type ImagePreview struct {
	rec   photo.Record
	likes *Likes
}

func (p *ImagePreview) Render() View {
	return View{
		Record: p.rec,
		Source: p.rec.URL,
		Likes:  likeCount(p.rec, p.likes),
		Liked:  p.likes.Liked(p.rec.ID),
	}
}

func (p *ImagePreview) Destroy() {
	p.likes.Unset(p.rec.ID)
}

func (p *ImagePreview) HandleClick(target Target) {
	if target == TargetLikes {
		p.likes.Toggle(p.rec.ID)
	}
}

// VideoPreview shows a looping video with its preview as poster. Clicking the
// media toggles playback.
type VideoPreview struct {
	rec     photo.Record
	likes   *Likes
	playing bool
}

func (p *VideoPreview) Render() View {
	return View{
		Record:  p.rec,
		Source:  p.rec.URL,
		Poster:  p.rec.PreviewURL,
		Likes:   likeCount(p.rec, p.likes),
		Liked:   p.likes.Liked(p.rec.ID),
		Video:   true,
		Playing: p.playing,
	}
}

func (p *VideoPreview) Destroy() {
	p.playing = false
	p.likes.Unset(p.rec.ID)
}

func (p *VideoPreview) HandleClick(target Target) {
	switch target {
	case TargetLikes:
		p.likes.Toggle(p.rec.ID)
	case TargetMedia:
		p.playing = !p.playing
	}
}

func likeCount(rec photo.Record, likes *Likes) int {
	if likes.Liked(rec.ID) {
		return rec.Likes + 1
	}
	return rec.Likes
}
