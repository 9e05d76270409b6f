package ui

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"mitoviz/domain/abundance"
	"mitoviz/domain/chart"
	"mitoviz/domain/core"
	"mitoviz/internal/errors"
	"mitoviz/internal/testkit"
	"mitoviz/internal/views"
)

// formatHint accompanies unexpected failures so the user knows what
// shape of file the pipeline expects
const formatHint = "Upload the pipeline's standard output file (tax-results.csv): a header row, one species column, and one column per sample."

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Title":       "MitoViz",
		"Guide":       renderGuide(),
		"Schemes":     views.ListSchemes(),
		"Defaults":    views.DefaultOptions(),
		"MinTopN":     views.MinTopN,
		"MaxTopN":     views.MaxTopN,
		"DemoEnabled": a.config.DemoEnabled,
		"Preloaded":   a.preloaded != nil,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		a.log.Error("template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

// handleVisualize parses the uploaded file and returns the payload for
// the requested chart type
func (a *App) handleVisualize(w http.ResponseWriter, r *http.Request) {
	file, header, opts, err := a.uploadedFile(w, r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	defer file.Close()

	uploadID := core.NewID()
	tbl, err := a.service.ProcessUpload(file, header.Filename)
	if err != nil {
		a.writeError(w, err)
		return
	}

	payload, err := a.service.Render(tbl, opts)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"upload_id": uploadID,
		"filename":  header.Filename,
		"summary":   abundance.Summarize(tbl),
		"chart":     payload,
		"options":   opts,
	})
}

// handleDashboard computes the summary and all three views at once
func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	file, header, opts, err := a.uploadedFile(w, r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	defer file.Close()

	tbl, err := a.service.ProcessUpload(file, header.Filename)
	if err != nil {
		a.writeError(w, err)
		return
	}

	dash, err := a.service.RenderDashboard(r.Context(), tbl, opts)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, dash)
}

func (a *App) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	a.handleExport(w, r, "csv")
}

func (a *App) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	a.handleExport(w, r, "xlsx")
}

// handleExport re-derives the cleaned table and streams it back as an
// attachment
func (a *App) handleExport(w http.ResponseWriter, r *http.Request, format string) {
	file, header, _, err := a.uploadedFile(w, r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	defer file.Close()

	tbl, err := a.service.ProcessUpload(file, header.Filename)
	if err != nil {
		a.writeError(w, err)
		return
	}

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="mitoviz_processed.csv"`)
		err = a.exporter.WriteCSV(w, tbl)
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="mitoviz_processed.xlsx"`)
		err = a.exporter.WriteXLSX(w, tbl)
	}
	if err != nil {
		a.log.Error("export failed: %v", err)
	}
}

// handleDemo renders the bundled demo dataset so the dashboard works
// before any upload
func (a *App) handleDemo(w http.ResponseWriter, r *http.Request) {
	opts := a.parseOptions(r)
	if err := opts.Validate(); err != nil {
		a.writeError(w, err)
		return
	}

	tbl := testkit.DemoTable()
	dash, err := a.service.RenderDashboard(r.Context(), tbl, opts)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, dash)
}

// handlePreload renders the results file configured at startup
func (a *App) handlePreload(w http.ResponseWriter, r *http.Request) {
	opts := a.parseOptions(r)
	if err := opts.Validate(); err != nil {
		a.writeError(w, err)
		return
	}

	dash, err := a.service.RenderDashboard(r.Context(), a.preloaded, opts)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, dash)
}

func (a *App) handleSchemes(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"schemes":  views.ListSchemes(),
		"palettes": views.Palettes,
	})
}

// uploadedFile extracts the multipart file and the view options from a
// chart-data request
func (a *App) uploadedFile(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, views.Options, error) {
	r.Body = http.MaxBytesReader(w, r.Body, a.config.MaxUploadBytes)
	if err := r.ParseMultipartForm(a.config.MaxUploadBytes); err != nil {
		return nil, nil, views.Options{}, errors.InvalidInput("could not parse upload: " + err.Error())
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, nil, views.Options{}, errors.InvalidInput("no file provided")
	}
	return file, header, a.parseOptions(r), nil
}

// parseOptions reads the view configuration from the request. Values
// are collected into one immutable Options value; absent fields keep
// the UI defaults.
func (a *App) parseOptions(r *http.Request) views.Options {
	opts := views.DefaultOptions()

	if v := r.FormValue("chart_type"); v != "" {
		opts.ChartType = chart.Type(v)
	}
	if v := r.FormValue("show_percentage"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.ShowPercentage = b
		}
	}
	if v := r.FormValue("top_n"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.TopN = n
		}
	}
	if v := r.FormValue("color_scheme"); v != "" {
		opts.ColorScheme = v
	}
	if v := r.FormValue("log_scale"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.LogScale = b
		}
	}
	return opts
}

func (a *App) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.log.Error("failed to encode response: %v", err)
	}
}

// writeError maps pipeline errors onto HTTP statuses. Anything without
// a known code is reported as a generic failure with the underlying
// error text and the file-format hint.
func (a *App) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError
	message := fmt.Sprintf("failed to process the file: %v", err)
	hint := formatHint

	switch code {
	case errors.CodeNoSampleColumns:
		status = http.StatusUnprocessableEntity
		message = "no sample columns found"
	case errors.CodeFileDecode:
		status = http.StatusBadRequest
		message = "failed to read the uploaded file"
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
		message = err.Error()
		hint = ""
	}

	a.log.Warn("request failed: code=%s err=%v", code, err)
	a.writeJSON(w, status, map[string]interface{}{
		"error": message,
		"code":  code,
		"hint":  hint,
	})
}
