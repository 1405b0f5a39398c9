package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/rankings", handler.ListRanking)

	mux.HandleFunc("GET /v1/players/{playerID}/category", handler.GetPrincipalCategory)
	mux.HandleFunc("GET /v1/players/{playerID}/category/history", handler.ListCategoryHistory)
	mux.HandleFunc("GET /v1/players/{playerID}/results", handler.ListResultsByPlayer)
	mux.HandleFunc("POST /v1/players/{playerID}/category-requests", handler.SubmitChangeRequest)

	mux.HandleFunc("GET /v1/category-requests/{requestID}", handler.GetChangeRequest)

	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/active", handler.GetActiveSeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/rankings", handler.ListSeasonRankings)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("GET /v1/admin/category-requests", RequireAdminToken(adminToken, http.HandlerFunc(handler.ListChangeRequests)))
	mux.Handle("POST /v1/admin/category-requests/{requestID}/approve", RequireAdminToken(adminToken, http.HandlerFunc(handler.ApproveChangeRequest)))
	mux.Handle("POST /v1/admin/category-requests/{requestID}/reject", RequireAdminToken(adminToken, http.HandlerFunc(handler.RejectChangeRequest)))
	mux.Handle("POST /v1/admin/players/{playerID}/category", RequireAdminToken(adminToken, http.HandlerFunc(handler.OverridePlayerCategory)))
	mux.Handle("POST /v1/admin/results", RequireAdminToken(adminToken, http.HandlerFunc(handler.RecordResult)))
	mux.Handle("DELETE /v1/admin/results/{resultID}", RequireAdminToken(adminToken, http.HandlerFunc(handler.DeleteResult)))
	mux.Handle("POST /v1/admin/categories/recalculate", RequireAdminToken(adminToken, http.HandlerFunc(handler.RunRecalculation)))
	mux.Handle("POST /v1/admin/seasons/{seasonID}/rankings/refresh", RequireAdminToken(adminToken, http.HandlerFunc(handler.RefreshSeasonRankings)))
}
