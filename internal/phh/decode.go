package phh

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Decode reads a single-hand .phh document.
func Decode(r io.Reader) (*HandHistory, error) {
	var h HandHistory
	if _, err := toml.NewDecoder(r).Decode(&h); err != nil {
		return nil, fmt.Errorf("phh: decoding hand: %w", err)
	}
	if err := h.check(); err != nil {
		return nil, err
	}
	return &h, nil
}

// DecodeAll reads a multi-hand .phhs document, in which each hand lives
// under a numbered top-level table. Hands are returned in numeric order.
func DecodeAll(r io.Reader) ([]*HandHistory, error) {
	var doc map[string]HandHistory
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("phh: decoding hands: %w", err)
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})

	hands := make([]*HandHistory, 0, len(keys))
	for _, k := range keys {
		h := doc[k]
		if h.HandID == "" {
			h.HandID = k
		}
		if err := h.check(); err != nil {
			return nil, fmt.Errorf("phh: hand %s: %w", k, err)
		}
		hands = append(hands, &h)
	}
	return hands, nil
}

// DecodeFile reads a .phh or .phhs file depending on its extension.
func DecodeFile(path string) ([]*HandHistory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("phh: opening %s: %w", path, err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".phhs") {
		return DecodeAll(f)
	}
	h, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("phh: %s: %w", path, err)
	}
	return []*HandHistory{h}, nil
}

func (h *HandHistory) check() error {
	if h.Variant != "" && h.Variant != VariantNT {
		return fmt.Errorf("phh: unsupported variant %q", h.Variant)
	}
	n := len(h.StartingStacks)
	if n < 2 {
		return fmt.Errorf("phh: %d starting stacks, need at least 2", n)
	}
	if len(h.BlindsOrStraddles) < 2 {
		return fmt.Errorf("phh: missing blinds")
	}
	for _, ante := range h.Antes {
		if ante != 0 {
			return fmt.Errorf("phh: antes are not supported")
		}
	}
	for _, straddle := range h.BlindsOrStraddles[2:] {
		if straddle != 0 {
			return fmt.Errorf("phh: straddles are not supported")
		}
	}
	if h.Players != nil && len(h.Players) != n {
		return fmt.Errorf("phh: %d players for %d stacks", len(h.Players), n)
	}
	if h.FinishingStacks != nil && len(h.FinishingStacks) != n {
		return fmt.Errorf("phh: %d finishing stacks for %d starting", len(h.FinishingStacks), n)
	}
	return nil
}
