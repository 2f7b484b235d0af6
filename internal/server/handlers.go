package server

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ekaraca/vakif-ledger/internal/analytics"
	"ekaraca/vakif-ledger/internal/ledger"
	"ekaraca/vakif-ledger/internal/logging"
	"ekaraca/vakif-ledger/internal/models"
	"ekaraca/vakif-ledger/internal/statement"
	"ekaraca/vakif-ledger/internal/textextract"
)

// Handler carries the dependencies shared by all HTTP endpoints.
type Handler struct {
	store          ledger.Store
	ingestor       *ledger.Ingestor
	extractor      textextract.Extractor
	symbols        analytics.SymbolSet
	logger         logging.Logger
	maxUploadBytes int64
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(store ledger.Store, ingestor *ledger.Ingestor, extractor textextract.Extractor, symbols analytics.SymbolSet, logger logging.Logger, maxUploadBytes int64) *Handler {
	return &Handler{
		store:          store,
		ingestor:       ingestor,
		extractor:      extractor,
		symbols:        symbols,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// RecordResponse is the JSON shape of one ledger record.
type RecordResponse struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Source      string  `json:"source"`
	Fingerprint string  `json:"fingerprint"`
	CreatedAt   string  `json:"createdAt"`
}

// SummaryResponse holds whole-ledger totals.
type SummaryResponse struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	NetIncome    float64 `json:"netIncome"`
	RecordCount  int     `json:"recordCount"`
}

// RecordsResponse is the reply of GET /api/records.
type RecordsResponse struct {
	Records []RecordResponse `json:"records"`
	Summary SummaryResponse  `json:"summary"`
}

// Records returns all ledger records together with overall totals.
func (h *Handler) Records(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListRecords(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list ledger records")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve records", err.Error())
		return
	}

	summary := analytics.Summarize(records)
	response := RecordsResponse{
		Records: make([]RecordResponse, len(records)),
		Summary: SummaryResponse{
			TotalIncome:  summary.TotalIncome.InexactFloat64(),
			TotalExpense: summary.TotalExpense.InexactFloat64(),
			NetIncome:    summary.NetIncome.InexactFloat64(),
			RecordCount:  summary.RecordCount,
		},
	}
	for i, rec := range records {
		response.Records[i] = toRecordResponse(rec)
	}

	respondJSON(w, http.StatusOK, response)
}

func toRecordResponse(rec models.LedgerRecord) RecordResponse {
	return RecordResponse{
		ID:          rec.ID,
		Date:        rec.Date,
		Type:        string(rec.Kind),
		Amount:      rec.Amount.InexactFloat64(),
		Description: rec.Description,
		Category:    rec.Category,
		Source:      rec.Source,
		Fingerprint: rec.Fingerprint,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
}

// DocumentResponse is the JSON shape of one ingested source document.
type DocumentResponse struct {
	ID          int64  `json:"id"`
	Filename    string `json:"filename"`
	ContentHash string `json:"contentHash"`
	ByteSize    int64  `json:"byteSize"`
	RecordCount int    `json:"recordCount"`
	UploadedAt  string `json:"uploadedAt"`
}

// Documents lists all ingested source documents.
func (h *Handler) Documents(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListDocuments(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list source documents")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve documents", err.Error())
		return
	}

	response := make([]DocumentResponse, len(docs))
	for i, doc := range docs {
		response[i] = DocumentResponse{
			ID:          doc.ID,
			Filename:    doc.Filename,
			ContentHash: doc.ContentHash,
			ByteSize:    doc.ByteSize,
			RecordCount: doc.RecordCount,
			UploadedAt:  doc.UploadedAt.Format(time.RFC3339),
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// StockPerformanceResponse is the JSON shape of one per-symbol aggregate.
type StockPerformanceResponse struct {
	Symbol            string  `json:"symbol"`
	TotalBuy          float64 `json:"totalBuy"`
	TotalSell         float64 `json:"totalSell"`
	RealizedPnL       float64 `json:"realizedPnL"`
	TotalCommission   float64 `json:"totalCommission"`
	NetReturn         float64 `json:"netReturn"`
	ReturnPercentage  float64 `json:"returnPercentage"`
	TransactionCount  int     `json:"transactionCount"`
	AvgReturnPerTrade float64 `json:"avgReturnPerTrade"`
}

// StockAnalytics returns per-symbol realized performance.
func (h *Handler) StockAnalytics(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListRecords(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list ledger records")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve records", err.Error())
		return
	}

	perfs := analytics.StockPerformances(records, h.symbols)
	response := make([]StockPerformanceResponse, len(perfs))
	for i, p := range perfs {
		response[i] = StockPerformanceResponse{
			Symbol:            p.Symbol,
			TotalBuy:          p.TotalBuy.InexactFloat64(),
			TotalSell:         p.TotalSell.InexactFloat64(),
			RealizedPnL:       p.RealizedPnL.InexactFloat64(),
			TotalCommission:   p.TotalCommission.InexactFloat64(),
			NetReturn:         p.NetReturn.InexactFloat64(),
			ReturnPercentage:  p.ReturnPercentage.InexactFloat64(),
			TransactionCount:  p.TransactionCount,
			AvgReturnPerTrade: p.AvgReturnPerTrade.InexactFloat64(),
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// MonthlyPerformanceResponse is the JSON shape of one monthly aggregate.
type MonthlyPerformanceResponse struct {
	Month            string  `json:"month"`
	TotalVolume      float64 `json:"totalVolume"`
	RealizedPnL      float64 `json:"realizedPnL"`
	CommissionPaid   float64 `json:"commissionPaid"`
	NetReturn        float64 `json:"netReturn"`
	TransactionCount int     `json:"transactionCount"`
	ReturnPercentage float64 `json:"returnPercentage"`
}

// MonthlyAnalytics returns trading performance bucketed by month.
func (h *Handler) MonthlyAnalytics(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListRecords(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list ledger records")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve records", err.Error())
		return
	}

	months := analytics.MonthlyPerformances(records, h.symbols)
	response := make([]MonthlyPerformanceResponse, len(months))
	for i, m := range months {
		response[i] = MonthlyPerformanceResponse{
			Month:            m.Month,
			TotalVolume:      m.TotalVolume.InexactFloat64(),
			RealizedPnL:      m.RealizedPnL.InexactFloat64(),
			CommissionPaid:   m.CommissionPaid.InexactFloat64(),
			NetReturn:        m.NetReturn.InexactFloat64(),
			TransactionCount: m.TransactionCount,
			ReturnPercentage: m.ReturnPercentage.InexactFloat64(),
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// IngestResponse is the reply of a successful statement upload.
type IngestResponse struct {
	Success          bool   `json:"success"`
	Filename         string `json:"filename"`
	DocumentID       int64  `json:"documentId"`
	RecordsFound     int    `json:"recordsFound"`
	RecordsInserted  int    `json:"recordsInserted"`
	DuplicateRecords int    `json:"duplicates"`
}

// Ingest accepts a multipart statement upload (field "statement", .txt or
// .pdf) and runs it through the ingestion pipeline. A previously ingested
// document or an upload whose records all already exist answers 409.
func (h *Handler) Ingest(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("statement")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Statement file is missing", err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read uploaded file", err.Error())
		return
	}
	if len(data) == 0 {
		respondError(w, http.StatusBadRequest, "Uploaded file is empty", nil)
		return
	}

	text, err := h.uploadText(r, header.Filename, data)
	if err != nil {
		h.logger.WithError(err).Error("Failed to extract statement text")
		respondError(w, http.StatusBadRequest, "Failed to extract statement text", err.Error())
		return
	}

	lines := statement.NormalizeLines(text)
	result, err := h.ingestor.Ingest(r.Context(), header.Filename, data, lines)
	if err != nil {
		if errors.Is(err, ledger.ErrDuplicateDocument) {
			respondJSON(w, http.StatusConflict, map[string]interface{}{
				"success":   false,
				"error":     "This statement has already been uploaded",
				"duplicate": true,
				"filename":  header.Filename,
			})
			return
		}
		h.logger.WithError(err).Error("Ingestion failed")
		respondError(w, http.StatusInternalServerError, "Ingestion failed", err.Error())
		return
	}

	if result.TotalRecords == 0 {
		respondError(w, http.StatusBadRequest,
			"No transactions found in the statement", nil)
		return
	}
	if result.Accepted == 0 && result.DuplicateRecords > 0 {
		respondJSON(w, http.StatusConflict, map[string]interface{}{
			"success":    false,
			"error":      "All records already exist",
			"duplicates": result.DuplicateRecords,
			"total":      result.TotalRecords,
			"filename":   header.Filename,
		})
		return
	}

	respondJSON(w, http.StatusOK, IngestResponse{
		Success:          true,
		Filename:         header.Filename,
		DocumentID:       result.DocumentID,
		RecordsFound:     result.TotalRecords,
		RecordsInserted:  result.Accepted,
		DuplicateRecords: result.DuplicateRecords,
	})
}

// uploadText converts the uploaded bytes to statement text. PDF uploads go
// through the text extractor via a temp file; everything else is treated as
// plain text.
func (h *Handler) uploadText(r *http.Request, filename string, data []byte) (string, error) {
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return string(data), nil
	}

	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	return h.extractor.ExtractText(r.Context(), tmp.Name())
}

// Health reports storage reachability.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if _, err := h.store.ListDocuments(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "Storage unavailable", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
