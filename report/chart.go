// This file is part of addrmapper.
//
// addrmapper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// addrmapper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with addrmapper.  If not, see <https://www.gnu.org/licenses/>.

package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart writes an HTML page containing a bar chart of the per-channel request
// counts.
func Chart(w io.Writer, title string, counts []uint64) error {
	var total uint64
	for _, n := range counts {
		total += n
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d requests over %d channels", total, len(counts)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Name: "channel"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "requests"}),
	)

	labels := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for ch, n := range counts {
		labels[ch] = fmt.Sprintf("ch%d", ch)
		data[ch] = opts.BarData{Value: n}
	}

	bar.SetXAxis(labels).AddSeries("requests", data)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}
