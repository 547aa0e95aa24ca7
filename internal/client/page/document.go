// Package page держит HTML страницы в памяти и адресует редактируемые слоты
// по стабильному атрибуту data-field.
package page

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/net/html"

	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/validation"
)

const (
	// FieldAttr атрибут, которым верстка помечает редактируемый слот
	FieldAttr = "data-field"
	// EditableAttr атрибут, которым слот помечается редактируемым в режиме правки
	EditableAttr = "contenteditable"
)

// ErrUnknownField is returned when no slot carries the requested key
var ErrUnknownField = errors.New("unknown field")

// Document is a parsed HTML page with its editable slots.
type Document struct {
	root   *html.Node
	slots  map[string][]*html.Node
	path   string
	source []byte
	keys   []string
	mu     sync.RWMutex
}

// Parse parses an in-memory page. Reload re-parses the same source.
func Parse(src []byte) (*Document, error) {
	d := &Document{source: bytes.Clone(src)}
	if err := d.parse(d.source); err != nil {
		return nil, err
	}
	return d, nil
}

// Open parses a page file. The file content read here is the page source:
// Reload returns to it even after Save has overwritten the file.
func Open(path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page: %w", err)
	}

	d := &Document{path: path, source: src}
	if err := d.parse(src); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) parse(src []byte) error {
	root, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return fmt.Errorf("failed to parse page: %w", err)
	}
	d.root = root
	d.scan()
	return nil
}

// scan собирает слоты по data-field в порядке документа.
// Ключи, не прошедшие валидацию, не считаются слотами.
func (d *Document) scan() {
	d.slots = make(map[string][]*html.Node)
	d.keys = d.keys[:0]

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if key, ok := attr(n, FieldAttr); ok && validation.ValidateFieldKey(key) == nil {
				if _, seen := d.slots[key]; !seen {
					d.keys = append(d.keys, key)
				}
				d.slots[key] = append(d.slots[key], n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
}

// Path returns the file the page was opened from, empty for in-memory pages
func (d *Document) Path() string {
	return d.path
}

// Keys returns field keys in document order
func (d *Document) Keys() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Get returns inner HTML of the first slot with the key
func (d *Document) Get(key string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	nodes := d.slots[key]
	if len(nodes) == 0 {
		return "", false
	}
	return innerHTML(nodes[0]), true
}

// Set replaces inner HTML of every slot with the key.
// Returns ErrUnknownField if the page has no such slot.
func (d *Document) Set(key, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.set(key, value)
}

func (d *Document) set(key, value string) error {
	nodes := d.slots[key]
	if len(nodes) == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}

	for _, n := range nodes {
		children, err := html.ParseFragment(bytes.NewReader([]byte(value)), n)
		if err != nil {
			return fmt.Errorf("failed to parse value of %s: %w", key, err)
		}
		for c := n.FirstChild; c != nil; {
			next := c.NextSibling
			n.RemoveChild(c)
			c = next
		}
		for _, c := range children {
			n.AppendChild(c)
		}
	}

	// значение может содержать вложенные слоты
	d.scan()
	return nil
}

// Snapshot returns every slot's current value
func (d *Document) Snapshot() models.Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	snapshot := make(models.Snapshot, len(d.keys))
	for _, key := range d.keys {
		snapshot[key] = innerHTML(d.slots[key][0])
	}
	return snapshot
}

// Apply sets every known field of the snapshot; unknown keys are ignored.
// Returns the keys that were applied, sorted.
func (d *Document) Apply(snapshot models.Snapshot) []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	applied := make([]string, 0, len(snapshot))
	for _, key := range snapshot.Keys() {
		if _, ok := d.slots[key]; !ok {
			continue
		}
		if err := d.set(key, snapshot[key]); err != nil {
			continue
		}
		applied = append(applied, key)
	}
	return applied
}

// SetEditable marks or unmarks every slot as editable
func (d *Document) SetEditable(editable bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, nodes := range d.slots {
		for _, n := range nodes {
			removeAttr(n, EditableAttr)
			if editable {
				n.Attr = append(n.Attr, html.Attribute{Key: EditableAttr, Val: "true"})
			}
		}
	}
}

// Editable reports whether the slot with the key is currently marked editable
func (d *Document) Editable(key string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	nodes := d.slots[key]
	if len(nodes) == 0 {
		return false
	}
	val, ok := attr(nodes[0], EditableAttr)
	return ok && val == "true"
}

// Reload discards in-memory changes and parses the page source again
func (d *Document) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.parse(d.source); err != nil {
		return fmt.Errorf("failed to reload page: %w", err)
	}
	return nil
}

// HTML renders the whole document. Slots are rendered without the
// editable marker, so the output is what site visitors get.
func (d *Document) HTML() (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var buf bytes.Buffer
	if err := html.Render(&buf, cloneForRender(d.root)); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return buf.String(), nil
}

// Save writes the rendered document back to its file (temp file + rename)
func (d *Document) Save() error {
	if d.path == "" {
		return fmt.Errorf("page has no backing file")
	}

	rendered, err := d.HTML()
	if err != nil {
		return err
	}

	// новый файл наследует права страницы, иначе CreateTemp оставит 0600
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(d.path); err == nil {
		mode = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(d.path), ".pagekeeper-*.html")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set page mode: %w", err)
	}

	if _, err := tmp.WriteString(rendered); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write page: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}

	if err := os.Rename(tmp.Name(), d.path); err != nil {
		return fmt.Errorf("failed to replace page: %w", err)
	}
	return nil
}

// cloneForRender копирует дерево без атрибута contenteditable на слотах
func cloneForRender(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      make([]html.Attribute, 0, len(n.Attr)),
	}
	_, slot := attr(n, FieldAttr)
	for _, a := range n.Attr {
		if slot && a.Namespace == "" && a.Key == EditableAttr {
			continue
		}
		c.Attr = append(c.Attr, a)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneForRender(child))
	}
	return c
}

func innerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		// Render пишет в bytes.Buffer, ошибка возможна только для некорректного дерева
		_ = html.Render(&buf, cloneForRender(c))
	}
	return buf.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func removeAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		out = append(out, a)
	}
	n.Attr = out
}
