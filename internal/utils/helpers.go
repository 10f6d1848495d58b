package utils

import (
	"time"

	ocrpb "github.com/werb210/ocr-reconciler/gen/proto/ocr/v1"
	"github.com/werb210/ocr-reconciler/internal/entity"
	"github.com/werb210/ocr-reconciler/internal/insights"
	"github.com/werb210/ocr-reconciler/internal/reconcile"
)

func ToPBResult(r *entity.OCRResult) *ocrpb.OcrResult {
	return &ocrpb.OcrResult{
		ApplicationId:  r.ApplicationID,
		DocumentId:     r.DocumentID.String(),
		FieldKey:       r.FieldKey,
		ExtractedValue: r.ExtractedValue,
		Confidence:     r.Confidence,
		SourcePage:     int32(r.SourcePage),
		ExtractedAt:    r.ExtractedAt.UTC().Format(time.RFC3339),
		RunId:          r.RunID,
		Version:        int32(r.Version),
	}
}

func ToPBResults(recs []*entity.OCRResult) []*ocrpb.OcrResult {
	out := make([]*ocrpb.OcrResult, 0, len(recs))
	for _, r := range recs {
		out = append(out, ToPBResult(r))
	}
	return out
}

func ToPBFlag(f reconcile.MismatchFlag) *ocrpb.MismatchFlag {
	refs := make([]*ocrpb.ValueRef, 0, len(f.ConflictsWith))
	for _, ref := range f.ConflictsWith {
		refs = append(refs, &ocrpb.ValueRef{
			DocumentId: ref.DocumentID.String(),
			Value:      ref.Value,
		})
	}
	return &ocrpb.MismatchFlag{
		FieldKey:      f.FieldKey,
		DocumentId:    f.DocumentID.String(),
		Value:         f.Value,
		ConflictsWith: refs,
		Severity:      f.Severity,
	}
}

func ToPBFlags(flags []reconcile.MismatchFlag) []*ocrpb.MismatchFlag {
	out := make([]*ocrpb.MismatchFlag, 0, len(flags))
	for _, f := range flags {
		out = append(out, ToPBFlag(f))
	}
	return out
}

func ToPBCategories(groups []insights.CategoryGroup) []*ocrpb.CategoryGroup {
	out := make([]*ocrpb.CategoryGroup, 0, len(groups))
	for _, g := range groups {
		rows := make([]*ocrpb.InsightRow, 0, len(g.Rows))
		for _, row := range g.Rows {
			rows = append(rows, &ocrpb.InsightRow{
				FieldKey:         row.FieldKey,
				Label:            row.Label,
				DocumentId:       row.DocumentID.String(),
				DocumentName:     row.DocumentName,
				DocumentCategory: string(row.DocumentCategory),
				Value:            row.Value,
				Conflict:         row.Conflict,
				ComparisonValues: row.ComparisonValues,
			})
		}
		out = append(out, &ocrpb.CategoryGroup{Category: string(g.Category), Rows: rows})
	}
	return out
}
