package pdfsource

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfcpumodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/tsawler/pdfstruct/model"
)

// context reads the document with pdfcpu once, on first use.
func (p *PDF) context() (*pdfcpumodel.Context, error) {
	p.cpuOnce.Do(func() {
		conf := pdfcpumodel.NewDefaultConfiguration()
		conf.ValidationMode = pdfcpumodel.ValidationRelaxed
		p.cpuCtx, p.cpuErr = api.ReadValidateAndOptimize(bytes.NewReader(p.data), conf)
		if p.cpuErr != nil {
			p.cpuErr = fmt.Errorf("failed to read PDF context: %w", p.cpuErr)
		}
	})
	return p.cpuCtx, p.cpuErr
}

// Outline returns the embedded bookmarks, depth first, with 1-based
// levels and 0-based destination pages. A document without bookmarks
// returns an empty outline.
func (p *PDF) Outline() ([]model.OutlineEntry, error) {
	ctx, err := p.context()
	if err != nil {
		return nil, err
	}
	if ctx.RootDict == nil || ctx.RootDict["Outlines"] == nil {
		return nil, nil
	}
	bookmarks, err := pdfcpu.Bookmarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookmarks: %w", err)
	}
	return FlattenBookmarks(bookmarks), nil
}

// FlattenBookmarks lists a bookmark tree depth first
func FlattenBookmarks(bookmarks []pdfcpu.Bookmark) []model.OutlineEntry {
	var out []model.OutlineEntry
	var walk func(bms []pdfcpu.Bookmark, level int)
	walk = func(bms []pdfcpu.Bookmark, level int) {
		for _, b := range bms {
			page := b.PageFrom - 1
			if page < 0 {
				page = 0
			}
			out = append(out, model.OutlineEntry{Title: b.Title, Level: level, Page: page})
			walk(b.Kids, level+1)
		}
	}
	walk(bookmarks, 1)
	return out
}

// PageImages returns the encoded images placed on page i, ordered by
// object number.
func (p *PDF) PageImages(i int) ([][]byte, error) {
	if i < 0 || i >= p.PageCount() {
		return nil, fmt.Errorf("page %d: %w", i, ErrPageOutOfRange)
	}
	ctx, err := p.context()
	if err != nil {
		return nil, err
	}

	images, err := pdfcpu.ExtractPageImages(ctx, i+1, false)
	if err != nil {
		return nil, fmt.Errorf("page %d: failed to extract images: %w", i, err)
	}

	nums := make([]int, 0, len(images))
	for n := range images {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	var out [][]byte
	for _, n := range nums {
		img := images[n]
		if img.Reader == nil {
			continue
		}
		data, err := io.ReadAll(img.Reader)
		if err != nil {
			return nil, fmt.Errorf("page %d: failed to read image %d: %w", i, n, err)
		}
		if len(data) > 0 {
			out = append(out, data)
		}
	}
	return out, nil
}
