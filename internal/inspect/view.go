package inspect

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lookbusy1344/zfpblock/internal/zfpcore"
)

// View is the terminal bitstream inspector, modeled on the teacher's
// debugger.TUI: a tview.Application driving a set of bordered TextView
// panels, with a global tcell input capture for navigation.
type View struct {
	App        *tview.Application
	WordsView  *tview.TextView
	HeaderView *tview.TextView
	StatusView *tview.TextView
	MainLayout *tview.Flex

	stream       *zfpcore.Stream
	size         zfpcore.BlockSize
	maxbits      int
	wordsPerRow  int
	numberFormat string

	currentBlock int
	numBlocks    int
}

// NewView constructs the inspector for stream, which was encoded with the
// given block size and per-block bit budget.
func NewView(stream *zfpcore.Stream, size zfpcore.BlockSize, maxbits, wordsPerRow int, numberFormat string) *View {
	if wordsPerRow <= 0 {
		wordsPerRow = 4
	}
	totalBits := stream.Len() * zfpcore.WordBits
	numBlocks := 0
	if maxbits > 0 {
		numBlocks = totalBits / maxbits
	}

	v := &View{
		App:          tview.NewApplication(),
		stream:       stream,
		size:         size,
		maxbits:      maxbits,
		wordsPerRow:  wordsPerRow,
		numberFormat: numberFormat,
		numBlocks:    numBlocks,
	}

	v.initializeViews()
	v.buildLayout()
	v.setupKeyBindings()
	v.refresh()

	return v
}

func (v *View) initializeViews() {
	v.WordsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	v.WordsView.SetBorder(true).SetTitle(" Words ")

	v.HeaderView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	v.HeaderView.SetBorder(true).SetTitle(" Block Header ")

	v.StatusView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	v.StatusView.SetBorder(true).SetTitle(" Status ")
}

func (v *View) buildLayout() {
	top := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(v.WordsView, 0, 3, false).
		AddItem(v.HeaderView, 0, 1, false)

	v.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(top, 0, 5, false).
		AddItem(v.StatusView, 3, 0, false)
}

func (v *View) setupKeyBindings() {
	v.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			v.App.Stop()
			return nil
		case tcell.KeyRight, tcell.KeyDown:
			v.nextBlock()
			return nil
		case tcell.KeyLeft, tcell.KeyUp:
			v.prevBlock()
			return nil
		}
		switch event.Rune() {
		case 'q':
			v.App.Stop()
			return nil
		case 'n':
			v.nextBlock()
			return nil
		case 'p':
			v.prevBlock()
			return nil
		}
		return event
	})
}

func (v *View) nextBlock() {
	if v.numBlocks == 0 {
		return
	}
	if v.currentBlock < v.numBlocks-1 {
		v.currentBlock++
	}
	v.refresh()
}

func (v *View) prevBlock() {
	if v.currentBlock > 0 {
		v.currentBlock--
	}
	v.refresh()
}

// Run starts the interactive terminal session.
func (v *View) Run() error {
	return v.App.SetRoot(v.MainLayout, true).Run()
}

func (v *View) refresh() {
	v.updateWordsView()
	v.updateHeaderView()
	v.updateStatusView()
	v.App.Draw()
}

func (v *View) updateWordsView() {
	v.WordsView.Clear()
	var b strings.Builder

	blockWordLo, blockWordHi := -1, -1
	if v.maxbits > 0 && v.numBlocks > 0 {
		blockWordLo = v.currentBlock * v.maxbits / zfpcore.WordBits
		blockWordHi = ((v.currentBlock+1)*v.maxbits - 1) / zfpcore.WordBits
	}

	for i := 0; i < v.stream.Len(); i++ {
		word := v.stream.Load(i)
		highlight := i >= blockWordLo && i <= blockWordHi
		text := v.formatWord(i, word)
		if highlight {
			fmt.Fprintf(&b, "[yellow]%s[white]", text)
		} else {
			fmt.Fprintf(&b, "%s", text)
		}
		if (i+1)%v.wordsPerRow == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	v.WordsView.SetText(b.String())
}

func (v *View) formatWord(i int, word uint64) string {
	switch v.numberFormat {
	case "dec":
		return fmt.Sprintf("%4d:%020d", i, word)
	case "both":
		return fmt.Sprintf("%4d:%#016x(%d)", i, word, word)
	default: // hex
		return fmt.Sprintf("%4d:%#016x", i, word)
	}
}

func (v *View) updateHeaderView() {
	v.HeaderView.Clear()
	if v.numBlocks == 0 {
		v.HeaderView.SetText("[yellow]No blocks (max-bits not set)[white]")
		return
	}

	base := v.currentBlock * v.maxbits
	headerBits := headerWidth(v.size)
	if headerBits > v.maxbits {
		headerBits = v.maxbits
	}

	var header uint64
	for i := 0; i < headerBits && i < 64; i++ {
		pos := base + i
		word := v.stream.Load(pos / zfpcore.WordBits)
		bit := (word >> uint(pos%zfpcore.WordBits)) & 1
		header |= bit << uint(i)
	}

	fmt.Fprintf(v.HeaderView, "block:      %d / %d\n", v.currentBlock, v.numBlocks-1)
	fmt.Fprintf(v.HeaderView, "bit range:  [%d, %d)\n", base, base+v.maxbits)
	fmt.Fprintf(v.HeaderView, "header:     %#x\n", header)
	fmt.Fprintf(v.HeaderView, "block size: %d (d=%d)\n", v.size, v.size.Dims())
	fmt.Fprintf(v.HeaderView, "max bits:   %d\n", v.maxbits)
}

func (v *View) updateStatusView() {
	v.StatusView.Clear()
	fmt.Fprint(v.StatusView, "[green]n/right[white]: next block  [green]p/left[white]: prev block  [green]q/ctrl-c[white]: quit")
}

// headerWidth returns the number of header bits shown for a block: always
// 12, the EBits+1 exponent header of a float64 block, whatever the block
// size. float32 blocks carry a 9-bit header and integer kinds carry no
// exponent header; the inspector does not tell the kinds apart, so for them
// the extra bits shown are payload bits, which also appear in the general
// word grid.
func headerWidth(size zfpcore.BlockSize) int {
	_ = size
	return 12
}
