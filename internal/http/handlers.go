package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"spendlog/internal/categories"
	"spendlog/internal/charts"
	"spendlog/internal/core"
	"spendlog/internal/service"
)

type expenseRow struct {
	ID          int64
	Description string
	Amount      string
	Label       string
	Date        string
}

type listView struct {
	Filter     string
	TotalCount int
	Rows       []expenseRow
}

type summaryView struct {
	Total    string
	Count    int
	TopLabel string
	HasData  bool
}

type indexView struct {
	Today      string
	Categories []categories.Category
	Filter     string
	List       listView
	Summary    summaryView
}

func (s *Server) listViewFor(filter string) listView {
	if filter == "" {
		filter = core.FilterAll
	}
	visible := s.ledger.Visible(filter)
	view := listView{
		Filter:     filter,
		TotalCount: s.ledger.Count(),
		Rows:       make([]expenseRow, 0, len(visible)),
	}
	for _, e := range visible {
		view.Rows = append(view.Rows, expenseRow{
			ID:          e.ID,
			Description: e.Description,
			Amount:      e.Amount.Format(),
			Label:       s.ledger.Catalog().Label(e.Category),
			Date:        e.Date.String(),
		})
	}
	return view
}

func (s *Server) summaryViewNow() summaryView {
	sum := s.ledger.Summary()
	view := summaryView{
		Total: sum.Total.Format(),
		Count: sum.Count,
	}
	if sum.TopCategory != core.NoTopCategory {
		view.TopLabel = s.ledger.Catalog().Label(sum.TopCategory)
		view.HasData = true
	}
	return view
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution failed", "error", err, "template", name)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexView{
		Today:      core.Today().String(),
		Categories: s.ledger.Catalog().All(),
		Filter:     core.FilterAll,
		List:       s.listViewFor(core.FilterAll),
		Summary:    s.summaryViewNow(),
	}
	s.render(w, r, "index.html", data)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	filter := sanitizeInput(r.URL.Query().Get("filter"))
	s.render(w, r, "expense_list.html", s.listViewFor(filter))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "summary_panel.html", s.summaryViewNow())
}

func (s *Server) handleSummaryChart(w http.ResponseWriter, r *http.Request) {
	groups := s.ledger.Groups()
	png, err := charts.CategoryBar(groups, s.ledger.Catalog().Label)
	if err != nil {
		slog.ErrorContext(r.Context(), "Chart render failed", "error", err)
		http.Error(w, "chart unavailable", http.StatusInternalServerError)
		return
	}
	if len(png) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		BadRequestError("Invalid request format").Write(w)
		return
	}

	amountStr := sanitizeInput(r.Form.Get("amount"))
	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		ValidationError("Enter an amount greater than zero").Write(w)
		return
	}

	date, err := core.ParseDate(r.Form.Get("date"))
	if err != nil {
		ValidationError("Pick a valid date").Write(w)
		return
	}

	draft := core.Expense{
		Amount:      core.Money{Cents: cents},
		Description: sanitizeInput(r.Form.Get("description")),
		Category:    sanitizeInput(r.Form.Get("category")),
		Date:        date,
	}

	rec, persisted, err := s.ledger.Add(r.Context(), draft)
	if err != nil {
		ValidationError(validationMessage(err)).Write(w)
		return
	}

	resp := SuccessMessage("Recorded " + rec.Description + " — " + rec.Amount.Format())
	if !persisted {
		resp = WarningMessage("Recorded, but saving failed; the latest change may not survive a reload")
	}
	resp.TriggerExpensesChanged().TriggerFormReset().Write(w)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		BadRequestError("Invalid request format").Write(w)
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		BadRequestError("Invalid expense id").Write(w)
		return
	}

	removed, persisted, err := s.ledger.Remove(r.Context(), id, confirmFromForm(r))
	if errors.Is(err, service.ErrNotConfirmed) {
		BadRequestError("Deletion was not confirmed").Write(w)
		return
	}
	if !removed {
		WarningMessage("That expense is already gone").TriggerExpensesChanged().Write(w)
		return
	}

	resp := SuccessMessage("Expense deleted")
	if !persisted {
		resp = WarningMessage("Deleted, but saving failed; the latest change may not survive a reload")
	}
	resp.TriggerExpensesChanged().Write(w)
}

func (s *Server) handleClearExpenses(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		BadRequestError("Invalid request format").Write(w)
		return
	}

	cleared, persisted, err := s.ledger.Clear(r.Context(), confirmFromForm(r))
	if errors.Is(err, service.ErrNotConfirmed) {
		BadRequestError("Clearing was not confirmed").Write(w)
		return
	}
	if !cleared {
		WarningMessage("There are no expenses to clear").Write(w)
		return
	}

	resp := SuccessMessage("All expenses cleared")
	if !persisted {
		resp = WarningMessage("Cleared, but saving failed; the latest change may not survive a reload")
	}
	resp.TriggerExpensesChanged().Write(w)
}

// confirmFromForm turns the confirm form field into the injected
// confirmation capability. hx-confirm sets the field only after the user
// accepted the browser prompt.
func confirmFromForm(r *http.Request) service.Confirmer {
	return func() bool {
		return r.Form.Get("confirm") == "true"
	}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidAmount):
		return "Enter an amount greater than zero"
	case errors.Is(err, core.ErrEmptyDescription):
		return "Enter a description"
	case errors.Is(err, core.ErrInvalidDate):
		return "Pick a valid date"
	case errors.Is(err, categories.ErrUnknownCategory), errors.Is(err, core.ErrEmptyCategory):
		return "Pick a category from the list"
	default:
		return "Invalid expense data"
	}
}
