package record

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/healthrec/healthrec/internal/platform/auth"
	"github.com/healthrec/healthrec/internal/platform/health"
	"github.com/healthrec/healthrec/internal/platform/vocab"
	"github.com/healthrec/healthrec/pkg/pagination"
)

type Handler struct {
	svc    *Service
	vocabs *vocab.Registry
}

func NewHandler(svc *Service, vocabs *vocab.Registry) *Handler {
	return &Handler{svc: svc, vocabs: vocabs}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	role := auth.RequireRole("admin", "physician", "nurse", "patient")

	read := api.Group("", role)
	read.GET("/patients/:patientID/records", h.ListRecords)
	read.GET("/records/:id", h.GetRecord)
	read.GET("/records/:id/summary", h.GetSummary)
	read.GET("/record-types", h.ListTypes)
	read.GET("/vocabularies/:family/:name/:code", h.LookupCode)

	write := api.Group("", auth.RequireRole("admin", "physician", "nurse"))
	write.POST("/patients/:patientID/records", h.CreateRecord)
	write.PUT("/records/:id", h.UpdateRecord)
	write.DELETE("/records/:id", h.DeleteRecord)
}

// CreateRecord accepts an item XML fragment as the request body and stores
// it, in canonical form, against the patient in the path.
func (h *Handler) CreateRecord(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to read request body")
	}

	rec := &Record{PatientID: patientID, Payload: string(payload)}
	if err := h.svc.Create(c.Request().Context(), rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) GetRecord(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}

	rec, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return notFoundOr500(err)
	}

	// Content negotiation: raw XML when asked for it, JSON envelope otherwise.
	if c.Request().Header.Get(echo.HeaderAccept) == echo.MIMEApplicationXML {
		return c.Blob(http.StatusOK, echo.MIMEApplicationXML, []byte(rec.Payload))
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) GetSummary(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}

	rec, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return notFoundOr500(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"id":      rec.ID.String(),
		"type":    rec.TypeName,
		"summary": rec.Summary,
	})
}

func (h *Handler) UpdateRecord(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to read request body")
	}

	rec := &Record{ID: id, Payload: string(payload)}
	if err := h.svc.Update(c.Request().Context(), rec); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "record not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) DeleteRecord(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return notFoundOr500(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListRecords(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	p := pagination.FromContext(c)
	ctx := c.Request().Context()

	var (
		records []*Record
		total   int
	)
	if typeParam := c.QueryParam("type"); typeParam != "" {
		typeID, err := resolveTypeID(typeParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		records, total, err = h.svc.ListByPatientAndType(ctx, patientID, typeID, p.Limit, p.Offset)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	} else {
		records, total, err = h.svc.ListByPatient(ctx, patientID, p.Limit, p.Offset)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, pagination.NewResponse(records, total, p.Limit, p.Offset))
}

// ListTypes returns the registered item type catalogue.
func (h *Handler) ListTypes(c echo.Context) error {
	regs := health.Types()
	out := make([]map[string]string, 0, len(regs))
	for _, reg := range regs {
		out = append(out, map[string]string{
			"type_id": reg.TypeID.String(),
			"name":    reg.Name,
			"root":    reg.Root,
		})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) LookupCode(c echo.Context) error {
	key := vocab.Key{Family: c.Param("family"), Name: c.Param("name")}
	display, ok := h.vocabs.Display(key, c.Param("code"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "code not found")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"family":  key.Family,
		"name":    key.Name,
		"code":    c.Param("code"),
		"display": display,
	})
}

// resolveTypeID accepts either a type UUID or a registered type name.
func resolveTypeID(s string) (uuid.UUID, error) {
	if id, err := uuid.Parse(s); err == nil {
		return id, nil
	}
	for _, reg := range health.Types() {
		if reg.Name == s || reg.Root == s {
			return reg.TypeID, nil
		}
	}
	return uuid.Nil, errors.New("unknown record type: " + s)
}

func notFoundOr500(err error) error {
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "record not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
