package graph

import (
	"encoding/json"
	"net/http"

	"eshop-be/internal/logger"
	"eshop-be/internal/utils"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

// maxBodyBytes leaves room for three base64 images in one product upload.
const maxBodyBytes = 32 << 20

type request struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName"`
}

// NewHandler serves POST {query, variables, operationName} against schema.
func NewHandler(schema graphql.Schema) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			utils.WriteJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req request
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Query == "" {
			utils.WriteJSONError(w, "query is required", http.StatusBadRequest)
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        r.Context(),
		})
		if result.HasErrors() {
			logger.FromCtx(r.Context()).Debug("graphql errors",
				zap.String("operation", req.OperationName),
				zap.Any("errors", result.Errors),
			)
		}

		utils.WriteJSON(w, http.StatusOK, result)
	})
}
