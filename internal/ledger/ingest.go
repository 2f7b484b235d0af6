package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"ekaraca/vakif-ledger/internal/logging"
	"ekaraca/vakif-ledger/internal/models"
	"ekaraca/vakif-ledger/internal/parsererror"
	"ekaraca/vakif-ledger/internal/statement"
)

// IngestResult summarizes one ingestion run. TotalRecords counts the
// candidate records produced by extraction; windows that rejected are logged
// but not counted. Accepted plus DuplicateRecords always equals TotalRecords
// on a run that finished.
type IngestResult struct {
	DocumentID       int64   `json:"documentId"`
	TotalRecords     int     `json:"totalRecords"`
	Accepted         int     `json:"accepted"`
	DuplicateRecords int     `json:"duplicateRecords"`
	InsertedIDs      []int64 `json:"insertedIds"`
}

// Ingestor coordinates the statement-to-ledger pipeline: document-level
// dedup, window extraction, canonicalization, fingerprinting, and the
// per-record atomic inserts. All collaborators are injected; the ingestor
// holds no global state.
type Ingestor struct {
	store         Store
	extractor     *statement.Extractor
	canonicalizer *Canonicalizer
	logger        logging.Logger
	parallelism   int
}

// NewIngestor creates an Ingestor. Parallelism bounds how many context
// windows are extracted concurrently; extraction is pure per window, so any
// bound >= 1 yields identical results.
func NewIngestor(store Store, extractor *statement.Extractor, canonicalizer *Canonicalizer, logger logging.Logger, parallelism int) *Ingestor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if parallelism < 1 {
		parallelism = 1
	}
	return &Ingestor{
		store:         store,
		extractor:     extractor,
		canonicalizer: canonicalizer,
		logger:        logger,
		parallelism:   parallelism,
	}
}

// Ingest runs one statement through the full pipeline.
//
// A byte-identical re-upload fails fast with ErrDuplicateDocument before any
// parsing. Individual records that already exist in the ledger are counted
// as duplicates and never abort the remaining candidates. Cancellation stops
// the insert loop between records; everything inserted so far stays
// committed and is reported in the result alongside the context error.
func (ing *Ingestor) Ingest(ctx context.Context, filename string, sourceBytes []byte, lines []string) (*IngestResult, error) {
	runID := uuid.NewString()
	log := ing.logger.WithFields(
		logging.Field{Key: logging.FieldRunID, Value: runID},
		logging.Field{Key: logging.FieldDocument, Value: filename},
	)

	doc := &models.SourceDocument{
		Filename:    filename,
		ContentHash: DocumentHash(sourceBytes),
		ByteSize:    int64(len(sourceBytes)),
	}

	if err := ing.store.InsertDocument(ctx, doc); err != nil {
		if errors.Is(err, ErrDuplicateDocument) {
			log.Info("Document already ingested, rejecting batch",
				logging.Field{Key: logging.FieldContentHash, Value: doc.ContentHash})
			return nil, fmt.Errorf("document %s: %w", filename, err)
		}
		return nil, fmt.Errorf("registering document %s: %w", filename, err)
	}

	records, err := ing.extractAll(ctx, lines, log)
	if err != nil {
		return nil, err
	}

	result := &IngestResult{
		DocumentID:   doc.ID,
		TotalRecords: len(records),
		InsertedIDs:  []int64{},
	}

	var loopErr error
	for i := range records {
		if err := ctx.Err(); err != nil {
			loopErr = err
			break
		}

		rec := &records[i]
		err := ing.store.InsertRecord(ctx, rec)
		switch {
		case err == nil:
			result.Accepted++
			result.InsertedIDs = append(result.InsertedIDs, rec.ID)
		case errors.Is(err, ErrDuplicateRecord):
			result.DuplicateRecords++
			log.Debug("Skipping duplicate ledger record",
				logging.Field{Key: logging.FieldFingerprint, Value: rec.Fingerprint})
		default:
			loopErr = fmt.Errorf("inserting record %s: %w", rec.Fingerprint, err)
		}
		if loopErr != nil {
			break
		}
	}

	// Count what actually landed, even for a partial run.
	if err := ing.store.SetDocumentRecordCount(ctx, doc.ID, result.Accepted); err != nil && loopErr == nil {
		loopErr = fmt.Errorf("updating record count for document %d: %w", doc.ID, err)
	}

	log.Info("Ingestion finished",
		logging.Field{Key: logging.FieldCount, Value: result.TotalRecords},
		logging.Field{Key: logging.FieldAccepted, Value: result.Accepted},
		logging.Field{Key: logging.FieldDuplicates, Value: result.DuplicateRecords})

	return result, loopErr
}

// extractAll segments the line stream and extracts every window, preserving
// document order. Windows are independent, so extraction fans out on a
// bounded errgroup; rejects leave a gap that is compacted afterwards.
func (ing *Ingestor) extractAll(ctx context.Context, lines []string, log logging.Logger) ([]models.LedgerRecord, error) {
	windows := statement.Segment(lines)
	extracted := make([]*models.LedgerRecord, len(windows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(ing.parallelism)

	for i, w := range windows {
		i, w := i, w
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			tx, err := ing.extractor.Extract(w)
			if err != nil {
				var reject *parsererror.RejectError
				if errors.As(err, &reject) {
					log.Info("Skipping unparsable window",
						logging.Field{Key: logging.FieldReason, Value: string(reject.Reason)},
						logging.Field{Key: logging.FieldLine, Value: w.Anchor()})
					return nil
				}
				return err
			}

			rec := ing.canonicalizer.Canonicalize(tx)
			rec.Fingerprint = Fingerprint(rec)
			extracted[i] = &rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("extracting windows: %w", err)
	}

	records := make([]models.LedgerRecord, 0, len(extracted))
	for _, rec := range extracted {
		if rec != nil {
			records = append(records, *rec)
		}
	}
	return records, nil
}
