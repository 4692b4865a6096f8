package reportpdf

// BlockKind discriminates layout blocks.
type BlockKind uint8

// Block kinds emitted by the story builder.
const (
	BlockParagraph BlockKind = iota
	BlockTable
	BlockSpacer
	BlockRule
	BlockPageBreak
)

// TextStyle describes how a paragraph is set. Sizes and distances are in
// points; Leading is the baseline-to-baseline line height.
type TextStyle struct {
	Size        float64
	Leading     float64
	Bold        bool
	Color       Color
	Indent      float64
	SpaceBefore float64
	SpaceAfter  float64
}

// TableRow is one key/value row of an info table. The value cell may carry
// its own color (classification rows do).
type TableRow struct {
	Key   string
	Value string
	Color Color
}

// Block is one element of the ordered layout list handed to the renderer.
// Fields are populated per kind: paragraphs use Text/BoldPrefix/Style, tables
// use Rows plus the column widths and Height as row padding, spacers use
// Height, rules use Height (line thickness) and Style.Color.
type Block struct {
	Kind BlockKind

	Text       string
	BoldPrefix string
	Style      TextStyle

	Rows     []TableRow
	KeyWidth float64
	ValWidth float64

	Height float64
}

func paragraph(text string, style TextStyle) Block {
	return Block{Kind: BlockParagraph, Text: text, Style: style}
}

func prefixed(prefix, text string, style TextStyle) Block {
	return Block{Kind: BlockParagraph, BoldPrefix: prefix, Text: text, Style: style}
}

func spacer(height float64) Block {
	return Block{Kind: BlockSpacer, Height: height}
}

func rule(thickness float64, color Color) Block {
	return Block{Kind: BlockRule, Height: thickness, Style: TextStyle{Color: color}}
}

func pageBreak() Block {
	return Block{Kind: BlockPageBreak}
}
