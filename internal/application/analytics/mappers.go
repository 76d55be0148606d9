package analytics

import (
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
	agg "github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/analytics"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func toSeriesDTO(g agg.Granularity, r agg.Range, buckets []agg.Bucket) *dto.MovementSeriesDTO {
	out := &dto.MovementSeriesDTO{
		Granularity: string(g),
		From:        r.From.Format(dateLayout),
		To:          r.To.Format(dateLayout),
		Buckets:     make([]dto.BucketDTO, 0, len(buckets)),
	}
	for _, b := range buckets {
		out.TotalInflow += b.Inflow
		out.TotalOutflow += b.Outflow
		out.Buckets = append(out.Buckets, dto.BucketDTO{
			Label: b.Label, Start: b.Start, End: b.End,
			Inflow: b.Inflow, Outflow: b.Outflow, Net: b.Net(),
		})
	}
	return out
}

func toSnapshotDTO(entries []agg.StockEntry) *dto.StockSnapshotDTO {
	out := &dto.StockSnapshotDTO{Items: make([]dto.StockEntryDTO, 0, len(entries))}
	for _, e := range entries {
		out.Items = append(out.Items, dto.StockEntryDTO{
			ProductID: e.ProductID, Name: e.Name, FullName: e.FullName, CurrentStock: e.CurrentStock,
		})
	}
	return out
}

func toHistoryDTO(tracked []entity.Product, rows []agg.HistoryRow) *dto.StockHistoryDTO {
	out := &dto.StockHistoryDTO{
		Products: make([]dto.ProductRefDTO, 0, len(tracked)),
		Rows:     make([]dto.StockHistoryRowDTO, 0, len(rows)),
	}
	for _, p := range tracked {
		out.Products = append(out.Products, dto.ProductRefDTO{ProductID: p.ID, Name: p.Name})
	}
	for _, row := range rows {
		values := make([]dto.ProductNetDTO, 0, len(row.Values))
		for _, v := range row.Values {
			values = append(values, dto.ProductNetDTO{ProductID: v.ProductID, Net: v.Net})
		}
		out.Rows = append(out.Rows, dto.StockHistoryRowDTO{Label: row.Label, Day: row.Day, Values: values})
	}
	return out
}

func toTrajectoryDTO(p *entity.Product, points []agg.TrajectoryPoint) *dto.TrajectoryDTO {
	out := &dto.TrajectoryDTO{
		ProductID:   p.ID,
		ProductName: p.Name,
		Points:      make([]dto.TrajectoryPointDTO, 0, len(points)),
	}
	for _, pt := range points {
		out.Points = append(out.Points, dto.TrajectoryPointDTO{Label: pt.Label, Timestamp: pt.Timestamp, Stock: pt.Stock})
	}
	return out
}

func toRankingDTO(r agg.Ranking) *dto.ActivityRankingDTO {
	conv := func(items []agg.RankedProduct) []dto.RankedProductDTO {
		out := make([]dto.RankedProductDTO, 0, len(items))
		for _, it := range items {
			out = append(out, dto.RankedProductDTO{
				ProductID: it.ProductID, Name: it.Name, Activity: it.Activity,
				Inflow: it.Inflow, Outflow: it.Outflow, SharePct: it.SharePct,
			})
		}
		return out
	}
	return &dto.ActivityRankingDTO{Top: conv(r.Top), Bottom: conv(r.Bottom), TotalActivity: r.TotalActivity}
}

func toExpiryDTO(report agg.ExpiryReport, visible int) *dto.ExpiryRiskDTO {
	total := len(report.Items)
	window := agg.Window(report.Items, visible)
	out := &dto.ExpiryRiskDTO{
		CriticalCount: report.CriticalCount,
		NearTermCount: report.NearTermCount,
		ExpiredCount:  report.ExpiredCount,
		Total:         total,
		Visible:       len(window),
		NextVisible:   agg.NextVisible(len(window), agg.DefaultPageStep, total),
		HasMore:       len(window) < total,
		Items:         make([]dto.ExpiryItemDTO, 0, len(window)),
	}
	for _, it := range window {
		out.Items = append(out.Items, dto.ExpiryItemDTO{
			LotID:           it.LotID,
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			Quantity:        it.Quantity,
			ExpirationDate:  it.ExpirationDate.Format(dateLayout),
			DaysUntilExpiry: it.DaysUntilExpiry,
			Level:           string(it.Level),
		})
	}
	return out
}
