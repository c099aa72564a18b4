package bars

import (
	"image/color"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/data"
	"github.com/gogpu/plot/paintbuf"
)

// Draw fills the series' bars whose keys fall inside keyRange through the
// painter. The container range query is expanded by one point on each
// side, so bars reaching into the visible range from just outside it are
// still drawn. Points with non-finite coordinates are skipped.
func (s *Series) Draw(p *paintbuf.Painter, keyRange plot.Range, fill color.Color) {
	pts := s.pts.Points()
	begin := s.pts.FindBegin(keyRange.Lower, true)
	end := s.pts.FindEnd(keyRange.Upper, true)
	for _, pt := range pts[begin:end] {
		if !pt.Valid() {
			continue
		}
		p.FillRect(s.BarRect(pt.Key, pt.Value), fill)
	}
}

// DrawSelection fills only the selected point runs of the series, e.g.
// with a highlight color on top of a regular Draw pass.
func (s *Series) DrawSelection(p *paintbuf.Painter, sel *data.Selection, fill color.Color) {
	if sel == nil || sel.IsEmpty() {
		return
	}
	for _, r := range sel.Ranges() {
		for _, pt := range s.pts.Segment(r) {
			if !pt.Valid() {
				continue
			}
			p.FillRect(s.BarRect(pt.Key, pt.Value), fill)
		}
	}
}

// RenderItem pairs a series with its fill color for a render pass.
type RenderItem struct {
	Series *Series
	Fill   color.Color
}

// Render draws the items into buf under the paint buffer lifecycle:
// acquire a painter, draw every item, release. A backend that cannot
// currently provide a drawing context makes Render skip the pass and
// return the error; the buffer keeps its previous contents.
func Render(buf paintbuf.Buffer, keyRange plot.Range, items []RenderItem) error {
	painter, err := buf.StartPainting()
	if err != nil {
		plot.Logger().Debug("bars: render pass skipped", "error", err)
		return err
	}
	defer buf.DonePainting()
	for _, item := range items {
		if item.Series == nil {
			continue
		}
		item.Series.Draw(painter, keyRange, item.Fill)
	}
	buf.SetInvalidated(false)
	return nil
}
