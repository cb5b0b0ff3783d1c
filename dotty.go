package vector

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
)

// Dot outputs the slot layout of a vector in Graphviz DOT format
// (for debugging purposes). Live elements are drawn as filled boxes, reserved
// slots as empty circles.
func Dot[T any](v *Vector[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\trankdir=LR;\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	var nodelist, edgelist strings.Builder
	header := fmt.Sprintf("len=%d\\ncap=%d\\ngen=%d", v.Len(), v.Cap(), v.store.Generation())
	nodelist.WriteString(fmt.Sprintf("\"v\" [label=\"%s\" %s];\n", header, slotDotStyles(true, true)))
	prev := "v"
	for i := 0; i < v.Cap(); i++ {
		id := fmt.Sprintf("s%d", i)
		if i < v.Len() {
			label := fmt.Sprintf("%d\\n%s", i, dotEscape(fmt.Sprint(v.store.Get(i))))
			nodelist.WriteString(fmt.Sprintf("\"%s\" [label=\"%s\" %s];\n", id, label, slotDotStyles(true, false)))
		} else {
			nodelist.WriteString(fmt.Sprintf("\"%s\" %s;\n", id, emptySlot(i)))
		}
		edgelist.WriteString(fmt.Sprintf("\"%s\" -> \"%s\";\n", prev, id))
		prev = id
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func emptySlot(i int) string {
	return fmt.Sprintf("[label=\"%d\",color=gray,shape=circle,fixedsize=true,width=.4]", i)
}

func slotDotStyles(live bool, header bool) string {
	s := ",style=filled"
	if header {
		return s + ",color=black,fillcolor=\"#a3d7e4\",shape=note"
	}
	if live {
		s += ",fillcolor=\"#CCDDFF\",shape=box"
	}
	return s
}

var graphemeSetup sync.Once

// dotEscape quotes s for a DOT label, shortened to at most maxLabel
// user-perceived characters.
func dotEscape(s string) string {
	const maxLabel = 16
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	if gstr := grapheme.StringFromString(s); gstr.Len() > maxLabel {
		var b strings.Builder
		for i := 0; i < maxLabel; i++ {
			b.WriteString(gstr.Nth(i))
		}
		s = b.String() + "…"
	}
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
