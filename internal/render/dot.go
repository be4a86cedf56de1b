package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"eve-router/internal/graph"
)

// WriteDOT writes the map as a Graphviz document. Each system node is
// labeled with its name plus the positions at which the route visits it,
// so the rendered image shows the visiting order.
func WriteDOT(w io.Writer, g *graph.Graph, route []string) error {
	positions := make(map[string][]int)
	for i, id := range route {
		positions[id] = append(positions[id], i)
	}

	keyword, arrow := "graph", "--"
	if g.Directed() {
		keyword, arrow = "digraph", "->"
	}
	if _, err := fmt.Fprintf(w, "%s {\n", keyword); err != nil {
		return err
	}

	systems := g.Systems()
	index := make(map[string]int, len(systems))
	for i, id := range systems {
		index[id] = i
	}

	for _, id := range systems {
		label := id
		if pos, ok := positions[id]; ok {
			label = fmt.Sprintf("%s %v", id, pos)
		}
		if _, err := fmt.Fprintf(w, "\t%s [label=%s];\n", quote(id), quote(label)); err != nil {
			return err
		}
	}
	for _, id := range systems {
		neighbors, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		for _, n := range neighbors {
			// Undirected maps store both arcs; emit each pair once.
			if !g.Directed() && index[n.ID] < index[id] {
				continue
			}
			if _, err := fmt.Fprintf(w, "\t%s %s %s;\n", quote(id), arrow, quote(n.ID)); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

// WriteFiles writes graph_<name>_<timestamp>.dot in dir and spawns the
// Graphviz dot tool to produce a matching PNG. A missing dot binary is not
// an error; the .dot file alone is still useful.
func WriteFiles(dir, name string, g *graph.Graph, route []string) (string, error) {
	timestamp := time.Now().UnixMilli()
	dotPath := filepath.Join(dir, fmt.Sprintf("graph_%s_%d.dot", sanitize(name), timestamp))
	pngPath := filepath.Join(dir, fmt.Sprintf("graph_%s_%d.png", sanitize(name), timestamp))

	f, err := os.Create(dotPath)
	if err != nil {
		return "", fmt.Errorf("create dot file: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := WriteDOT(w, g, route); err != nil {
		f.Close()
		return "", fmt.Errorf("write dot file: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return "", fmt.Errorf("write dot file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write dot file: %w", err)
	}

	cmd := exec.Command("dot", "-Tpng", "-o", pngPath, dotPath)
	cmd.Start()
	return dotPath, nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, s)
}
