package routes

import (
	"cnc_quote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog = "/catalog"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)

	materials := catalog.Group("/materials")
	{
		materials.POST("", catalogHandler.CreateMaterial)
		materials.GET("", catalogHandler.ListMaterials)
		materials.GET("/:id", catalogHandler.GetMaterial)
		materials.PUT("/:id", catalogHandler.UpdateMaterial)
		materials.PATCH("/:id/deactivate", catalogHandler.DeactivateMaterial)
	}

	finishes := catalog.Group("/finishes")
	{
		finishes.POST("", catalogHandler.CreateFinish)
		finishes.GET("", catalogHandler.ListFinishes)
		finishes.GET("/:id", catalogHandler.GetFinish)
		finishes.PUT("/:id", catalogHandler.UpdateFinish)
		finishes.PATCH("/:id/deactivate", catalogHandler.DeactivateFinish)
	}

	tolerances := catalog.Group("/tolerances")
	{
		tolerances.POST("", catalogHandler.CreateTolerance)
		tolerances.GET("", catalogHandler.ListTolerances)
		tolerances.GET("/:id", catalogHandler.GetTolerance)
		tolerances.PUT("/:id", catalogHandler.UpdateTolerance)
		tolerances.PATCH("/:id/deactivate", catalogHandler.DeactivateTolerance)
	}

	rateCards := catalog.Group("/rate-cards")
	{
		rateCards.POST("", catalogHandler.CreateRateCard)
		rateCards.GET("", catalogHandler.ListRateCards)
		rateCards.GET("/:region", catalogHandler.GetRateCard)
		rateCards.PUT("/:region", catalogHandler.UpdateRateCard)
	}
}
