package content

// ListItem is one entry of a work or project list: a name, the dates it
// covers, a short description, an image and an optional link.
type ListItem struct {
	Name        string
	Dates       string
	Description string
	ImgPath     string
	Link        string
}

// NewListItem builds an item. Only the first link, if any, is kept.
func NewListItem(name, dates, description, imgPath string, link ...string) ListItem {
	item := ListItem{
		Name:        name,
		Dates:       dates,
		Description: description,
		ImgPath:     imgPath,
	}
	if len(link) > 0 {
		item.Link = link[0]
	}
	return item
}

// HasLink reports whether the item points somewhere.
func (i ListItem) HasLink() bool {
	return i.Link != ""
}
