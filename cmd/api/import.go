package main

import (
	"net/http"

	"github.com/Beka01247/cafe/internal/parser"
	"github.com/go-chi/chi"
)

type CreateImportTaskPayload struct {
	SpreadsheetID string `json:"spreadsheet_id" validate:"required,min=10,max=100"`
	ReadRange     string `json:"range" validate:"omitempty,max=50"`
}

type CreateImportTaskResponse struct {
	TaskID  string `json:"task_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// createImportTaskHandler godoc
//
//	@Summary		Import the menu from a spreadsheet
//	@Description	Queues a task that replaces the stored menu with the sheet contents
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateImportTaskPayload	true	"Spreadsheet"
//	@Success		202		{object}	CreateImportTaskResponse
//	@Failure		400		{object}	error
//	@Failure		503		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/menu/import [post]
func (app *application) createImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateImportTaskPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	readRange := payload.ReadRange
	if readRange == "" {
		readRange = parser.DefaultReadRange
	}

	task, err := app.importService.CreateImportTask(r.Context(), payload.SpreadsheetID, readRange, actorFromRequest(r))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	response := CreateImportTaskResponse{
		TaskID:  task.ID.Hex(),
		Status:  string(task.Status),
		Message: "menu import task created",
	}

	if err := app.jsonRespone(w, http.StatusAccepted, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getImportTaskHandler godoc
//
//	@Summary	Get a menu import task
//	@Tags		menu
//	@Produce	json
//	@Param		task_id	path		string	true	"Task ID"
//	@Success	200		{object}	domain.MenuImportTask
//	@Failure	404		{object}	error
//	@Security	ApiKeyAuth
//	@Router		/menu/import/{task_id} [get]
func (app *application) getImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	task, err := app.importService.GetTask(r.Context(), chi.URLParam(r, "task_id"))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, task); err != nil {
		app.internalServerError(w, r, err)
	}
}
