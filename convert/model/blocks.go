package model

import "thesisdoc/common"

// Constructors keep block payloads consistent with kinds.

func NewHeading(level int, text string) Block {
	return Block{Kind: KindHeading, Heading: &Heading{Level: level, Text: text}}
}

func NewParagraph(text string) Block {
	return Block{Kind: KindParagraph, Paragraph: &Paragraph{Text: text}}
}

func NewStyledParagraph(text string, style ParagraphStyle, align common.Align) Block {
	return Block{Kind: KindParagraph, Paragraph: &Paragraph{Text: text, Style: style, Align: align}}
}

func NewListItem(ordered bool, level, index int, text string) Block {
	return Block{Kind: KindListItem, ListItem: &ListItem{Ordered: ordered, Level: level, Index: index, Text: text}}
}

func NewImage(img *Image) Block {
	return Block{Kind: KindImage, Image: img}
}

func NewCaption(text string) Block {
	return Block{Kind: KindCaption, Paragraph: &Paragraph{Text: text, Align: common.AlignCenter, Style: StyleCaption}}
}

func NewRow(row *Row) Block {
	return Block{Kind: KindTableRow, Row: row}
}

func NewCitation(text string) Block {
	return Block{Kind: KindCitation, Paragraph: &Paragraph{Text: text}}
}

func NewReference(text string) Block {
	return Block{Kind: KindReference, Paragraph: &Paragraph{Text: text}}
}

func NewPlaceholder(text string) Block {
	return Block{Kind: KindPlaceholder, Paragraph: &Paragraph{Text: text, Align: common.AlignCenter}}
}

func NewPageBreak() Block {
	return Block{Kind: KindPageBreak}
}

// Text returns textual payload of the block if it has one.
func (b *Block) Text() string {
	switch {
	case b.Heading != nil:
		return b.Heading.Text
	case b.Paragraph != nil:
		return b.Paragraph.Text
	case b.ListItem != nil:
		return b.ListItem.Text
	case b.Image != nil:
		return b.Image.Description
	}
	return ""
}
