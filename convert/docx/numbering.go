package docx

import (
	"strconv"

	"github.com/beevik/etree"

	"thesisdoc/convert/model"
)

const (
	bulletAbstractID  = 0
	decimalAbstractID = 1
	bulletNumID       = 1
	listLevels        = 3
)

// numbering allocates list instances. Bullets share a single instance, every
// ordered run gets its own so numbering restarts.
type numbering struct {
	ordered []int // numIds of ordered runs in allocation order
	current int
	next    int
}

func newNumbering() *numbering {
	return &numbering{next: bulletNumID + 1}
}

func (n *numbering) forItem(li *model.ListItem) int {
	if !li.Ordered {
		n.current = 0
		return bulletNumID
	}
	if li.Index <= 1 || n.current == 0 {
		n.current = n.next
		n.next++
		n.ordered = append(n.ordered, n.current)
	}
	return n.current
}

func (n *numbering) count() int {
	return len(n.ordered)
}

func (n *numbering) render() *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("w:numbering")
	root.CreateAttr("xmlns:w", nsW)

	// all abstract definitions go before instances
	abstractNum(root, bulletAbstractID, "bullet", "•")
	abstractNum(root, decimalAbstractID, "decimal", "")

	num := root.CreateElement("w:num")
	num.CreateAttr("w:numId", strconv.Itoa(bulletNumID))
	setVal(num.CreateElement("w:abstractNumId"), strconv.Itoa(bulletAbstractID))

	for _, id := range n.ordered {
		num := root.CreateElement("w:num")
		num.CreateAttr("w:numId", strconv.Itoa(id))
		setVal(num.CreateElement("w:abstractNumId"), strconv.Itoa(decimalAbstractID))
		ovr := num.CreateElement("w:lvlOverride")
		ovr.CreateAttr("w:ilvl", "0")
		setVal(ovr.CreateElement("w:startOverride"), "1")
	}
	return doc
}

func abstractNum(root *etree.Element, id int, format, text string) {
	an := root.CreateElement("w:abstractNum")
	an.CreateAttr("w:abstractNumId", strconv.Itoa(id))
	setVal(an.CreateElement("w:multiLevelType"), "hybridMultilevel")

	for l := range listLevels {
		lvl := an.CreateElement("w:lvl")
		lvl.CreateAttr("w:ilvl", strconv.Itoa(l))
		setVal(lvl.CreateElement("w:start"), "1")
		setVal(lvl.CreateElement("w:numFmt"), format)
		lt := text
		if format == "decimal" {
			lt = "%" + strconv.Itoa(l+1) + "."
		}
		setVal(lvl.CreateElement("w:lvlText"), lt)
		setVal(lvl.CreateElement("w:lvlJc"), "left")
		ind := lvl.CreateElement("w:pPr").CreateElement("w:ind")
		ind.CreateAttr("w:left", strconv.Itoa(720*(l+1)))
		ind.CreateAttr("w:hanging", "360")
	}
}
