package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	api "tradelens/internal/api"
	"tradelens/internal/domain"
	"tradelens/internal/domain/matching"
	"tradelens/internal/metrics"
	"tradelens/internal/ports"
	crmsvc "tradelens/internal/services/crm"
	enrichsvc "tradelens/internal/services/enrichment"
	ingestsvc "tradelens/internal/services/ingest"
	intelsvc "tradelens/internal/services/intelligence"
	searchsvc "tradelens/internal/services/search"
)

// Server implements api.StrictServerInterface.
type Server struct {
	ingest       *ingestsvc.Service
	search       *searchsvc.Service
	intelligence *intelsvc.Service
	enrichment   *enrichsvc.Service
	crm          *crmsvc.Service
	db           ports.Pinger
	metrics      *metrics.Metrics
	log          *zap.Logger
}

type Services struct {
	Ingest       *ingestsvc.Service
	Search       *searchsvc.Service
	Intelligence *intelsvc.Service
	Enrichment   *enrichsvc.Service
	CRM          *crmsvc.Service
}

func New(svc Services, db ports.Pinger, m *metrics.Metrics, log *zap.Logger) *Server {
	return &Server{
		ingest:       svc.Ingest,
		search:       svc.Search,
		intelligence: svc.Intelligence,
		enrichment:   svc.Enrichment,
		crm:          svc.CRM,
		db:           db,
		metrics:      m,
		log:          log.Named("http"),
	}
}

// Routes returns a chi.Router mounting the API handlers, /metrics and the
// OpenAPI document.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(s.metrics.Middleware)
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(api.Spec)
	})

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{BaseRouter: r, ErrorHandlerFunc: s.requestError})
	return r
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.db.Ping(ctx); err != nil {
		s.log.Warn("health check: store unreachable", zap.Error(err))
		return api.GetHealthz503JSONResponse{Status: "degraded", Database: "unreachable"}, nil
	}
	return api.GetHealthz200JSONResponse{Status: "ok", Database: "ok"}, nil
}

func (s *Server) GetSearch(ctx context.Context, req api.GetSearchRequestObject) (api.GetSearchResponseObject, error) {
	p := req.Params
	f := searchsvc.Filters{
		Company:            deref(p.Company),
		OriginCountry:      deref(p.OriginCountry),
		DestinationCountry: deref(p.DestinationCountry),
		Commodity:          deref(p.Commodity),
		HSCode:             deref(p.HsCode),
		Limit:              derefInt(p.Limit),
		Offset:             derefInt(p.Offset),
	}
	if p.Mode != nil {
		f.Mode = string(*p.Mode)
	}
	res, err := s.search.Search(ctx, f)
	if errors.Is(err, domain.ErrValidation) {
		return api.GetSearch400JSONResponse(failure(err)), nil
	}
	if err != nil {
		return nil, err
	}
	items := make([]api.ShipmentItem, len(res.Items))
	for i, it := range res.Items {
		items[i] = toShipmentItem(it)
	}
	return api.GetSearch200JSONResponse{Success: true, Total: res.Total, Items: items}, nil
}

func (s *Server) PostShipmentsOcean(ctx context.Context, req api.PostShipmentsOceanRequestObject) (api.PostShipmentsOceanResponseObject, error) {
	if req.Body == nil {
		return nil, &runtimeError{code: http.StatusBadRequest, msg: "missing body"}
	}
	stored, company, err := s.ingest.IngestOcean(ctx, oceanFromRequest(*req.Body))
	if errors.Is(err, domain.ErrValidation) {
		return api.PostShipmentsOcean400JSONResponse(failure(err)), nil
	}
	if err != nil {
		return nil, err
	}
	return api.PostShipmentsOcean201JSONResponse{Success: true, ShipmentId: stored.ID, TradeMonth: stored.TradeMonth, Company: toCompanyProfile(company)}, nil
}

func (s *Server) PostShipmentsAir(ctx context.Context, req api.PostShipmentsAirRequestObject) (api.PostShipmentsAirResponseObject, error) {
	if req.Body == nil {
		return nil, &runtimeError{code: http.StatusBadRequest, msg: "missing body"}
	}
	stored, company, err := s.ingest.IngestAir(ctx, airFromRequest(*req.Body))
	if errors.Is(err, domain.ErrValidation) {
		return api.PostShipmentsAir400JSONResponse(failure(err)), nil
	}
	if err != nil {
		return nil, err
	}
	return api.PostShipmentsAir201JSONResponse{Success: true, ShipmentId: stored.ID, TradeMonth: stored.TradeMonth, Company: toCompanyProfile(company)}, nil
}

func (s *Server) GetCompaniesIntelligence(ctx context.Context, req api.GetCompaniesIntelligenceRequestObject) (api.GetCompaniesIntelligenceResponseObject, error) {
	rows, err := s.intelligence.List(ctx, derefInt(req.Params.Limit), derefInt(req.Params.Offset))
	if errors.Is(err, domain.ErrValidation) {
		return api.GetCompaniesIntelligence400JSONResponse(failure(err)), nil
	}
	if err != nil {
		return nil, err
	}
	items := make([]api.CompanyIntelligence, len(rows))
	for i, row := range rows {
		items[i] = toIntelligence(row)
	}
	return api.GetCompaniesIntelligence200JSONResponse{Success: true, Items: items}, nil
}

func (s *Server) GetCompaniesIdIntelligence(ctx context.Context, req api.GetCompaniesIdIntelligenceRequestObject) (api.GetCompaniesIdIntelligenceResponseObject, error) {
	row, err := s.intelligence.Company(ctx, req.Id)
	switch {
	case errors.Is(err, domain.ErrValidation):
		return api.GetCompaniesIdIntelligence400JSONResponse(failure(err)), nil
	case errors.Is(err, domain.ErrNotFound):
		return api.GetCompaniesIdIntelligence404JSONResponse(failure(err)), nil
	case err != nil:
		return nil, err
	}
	return api.GetCompaniesIdIntelligence200JSONResponse{Success: true, Company: toIntelligence(row)}, nil
}

func (s *Server) GetMatches(ctx context.Context, req api.GetMatchesRequestObject) (api.GetMatchesResponseObject, error) {
	p := req.Params
	rows, err := s.intelligence.Matches(ctx, deref(p.CompanyId), deref(p.MinTier), derefInt(p.Limit))
	if errors.Is(err, domain.ErrValidation) {
		return api.GetMatches400JSONResponse(failure(err)), nil
	}
	if err != nil {
		return nil, err
	}
	items := make([]api.MatchCandidate, len(rows))
	for i, m := range rows {
		items[i] = api.MatchCandidate{
			OceanShipmentId: m.OceanShipmentID,
			AirShipmentId:   m.AirShipmentID,
			OceanCompanyId:  m.OceanCompanyID,
			AirCompanyId:    m.AirCompanyID,
			OceanCompany:    m.OceanCompany,
			AirCompany:      m.AirCompany,
			HsCode:          m.HSCode,
			Score:           m.Score,
			Tier:            string(m.Tier),
		}
	}
	return api.GetMatches200JSONResponse{Success: true, Items: items}, nil
}

func (s *Server) PostMatchesScore(_ context.Context, req api.PostMatchesScoreRequestObject) (api.PostMatchesScoreResponseObject, error) {
	if req.Body == nil {
		return nil, &runtimeError{code: http.StatusBadRequest, msg: "missing body"}
	}
	a, b := toRecord(req.Body.A), toRecord(req.Body.B)
	if (a.CompanyName == "" && a.HSCode == "") || (b.CompanyName == "" && b.HSCode == "") {
		return api.PostMatchesScore400JSONResponse(failure(domain.Invalid("", "both records need a company name or HS code"))), nil
	}
	res, pairable := s.intelligence.Score(a, b)
	return api.PostMatchesScore200JSONResponse{
		Success:  true,
		Pairable: pairable,
		Score:    res.Score,
		RawScore: res.RawScore,
		Tier:     string(res.Tier),
		Signals: api.MatchSignals{
			Name:     res.Signals.Name,
			HsCode:   res.Signals.HSCode,
			Postal:   res.Signals.Postal,
			Locality: res.Signals.Locality,
			HsPrefix: res.Signals.HSPrefix,
		},
	}, nil
}

func (s *Server) PostContactsEnrich(ctx context.Context, req api.PostContactsEnrichRequestObject) (api.PostContactsEnrichResponseObject, error) {
	if req.Body == nil {
		return nil, &runtimeError{code: http.StatusBadRequest, msg: "missing body"}
	}
	res, err := s.enrichment.Enrich(ctx, enrichsvc.Request{
		CompanyName: req.Body.CompanyName,
		PostalCode:  deref(req.Body.PostalCode),
		Domain:      deref(req.Body.Domain),
		Limit:       derefInt(req.Body.Limit),
	})
	if errors.Is(err, domain.ErrValidation) {
		return api.PostContactsEnrich400JSONResponse(failure(err)), nil
	}
	if err != nil {
		return nil, err
	}
	out := api.PostContactsEnrich200JSONResponse{
		Success:  res.Success,
		Source:   res.Source,
		Contacts: make([]api.Contact, len(res.Contacts)),
		CachedAt: res.CachedAt,
	}
	for i, c := range res.Contacts {
		out.Contacts[i] = toContact(c)
	}
	if res.Error != "" {
		msg := res.Error
		out.Error = &msg
	}
	return out, nil
}

func (s *Server) PostCrmCompanies(ctx context.Context, req api.PostCrmCompaniesRequestObject) (api.PostCrmCompaniesResponseObject, error) {
	if req.Body == nil {
		return nil, &runtimeError{code: http.StatusBadRequest, msg: "missing body"}
	}
	res, err := s.crm.AddCompany(ctx, req.Body.CompanyName, req.Body.Metadata)
	if errors.Is(err, domain.ErrValidation) {
		return api.PostCrmCompanies400JSONResponse(failure(err)), nil
	}
	if err != nil {
		return nil, err
	}
	body := api.CRMCompanyResponse{Success: true, AlreadyExists: res.AlreadyExists, Id: res.Company.ID, Status: res.Company.Status}
	if res.AlreadyExists {
		return api.PostCrmCompanies200JSONResponse(body), nil
	}
	return api.PostCrmCompanies201JSONResponse(body), nil
}

// requestError answers malformed parameters and bodies.
func (s *Server) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, err.Error())
}

// responseError maps handler errors onto status codes. Unexpected errors are
// logged and reported without detail.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	var rt *runtimeError
	switch {
	case errors.As(err, &rt):
		writeError(w, rt.code, rt.msg)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		s.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Success: false, Error: msg})
}

func failure(err error) api.ErrorResponse { return api.ErrorResponse{Success: false, Error: err.Error()} }

type runtimeError struct {
	code int
	msg  string
}

func (e *runtimeError) Error() string { return e.msg }

// requestLogger logs one line per request at debug level, and at warn for
// server errors.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("took", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			}
			if ww.Status() >= http.StatusInternalServerError {
				log.Warn("http request", fields...)
				return
			}
			log.Debug("http request", fields...)
		})
	}
}

func toRecord(r api.MatchRecord) matching.Record {
	return matching.Record{CompanyName: r.CompanyName, HSCode: r.HsCode, PostalCode: deref(r.PostalCode), Locality: deref(r.Locality)}
}
