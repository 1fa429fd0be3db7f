package dom

import "unicode/utf16"

// CharacterData is https://dom.spec.whatwg.org/#characterdata
type CharacterData struct {
	Data string
}

// Length counts UTF-16 code units, like the DOM does.
func (c *CharacterData) Length() int {
	return len(utf16.Encode([]rune(c.Data)))
}

func (c *CharacterData) AppendData(data string) {
	c.Data += data
}

// Text is https://dom.spec.whatwg.org/#text
type Text struct {
	*CharacterData
}

func NewText(data string) *Text {
	return &Text{CharacterData: &CharacterData{Data: data}}
}

// Comment is https://dom.spec.whatwg.org/#interface-comment
type Comment struct {
	*CharacterData
}

// NewComment returns a comment with its Data section filled.
func NewComment(data string) *Comment {
	return &Comment{CharacterData: &CharacterData{Data: data}}
}
