package httpadapter

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the puzzle API on the given router group.
//
//	POST /api/v1/puzzles                 - generate a puzzle grid
//	GET  /api/v1/palette                 - list the canonical colors
//	POST /api/v1/analysis/discrepancies  - user answers vs true ink counts
//	POST /api/v1/analysis/tiles          - classify flagged tiles
//	POST /api/v1/analysis/pattern        - bucket aggregate mistakes
//	POST /api/v1/history                 - save a completed round
//	GET  /api/v1/history                 - list saved rounds
//	GET  /api/v1/history/:id             - load one round
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.POST("/puzzles", h.HandleGenerate)
	rg.GET("/palette", h.HandlePalette)

	analysis := rg.Group("/analysis")
	{
		analysis.POST("/discrepancies", h.HandleDiscrepancies)
		analysis.POST("/tiles", h.HandleTiles)
		analysis.POST("/pattern", h.HandlePattern)
	}

	rg.POST("/history", h.HandleSaveHistory)
	rg.GET("/history", h.HandleListHistory)
	rg.GET("/history/:id", h.HandleLoadHistory)
}
