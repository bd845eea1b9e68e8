package helpers

import (
	"net/http"

	"github.com/fariowear/go-storefront/app/middlewares"
	"github.com/fariowear/go-storefront/app/utils/breadcrumb"
)

func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if countVal := r.Context().Value(middlewares.FavoritesCountKey); countVal != nil {
		if count, ok := countVal.(int); ok {
			pageSpecificData["FavoritesCount"] = count
		} else {
			pageSpecificData["FavoritesCount"] = 0
		}
	} else {
		pageSpecificData["FavoritesCount"] = 0
	}

	if _, exists := pageSpecificData["Breadcrumbs"]; !exists {
		pageSpecificData["Breadcrumbs"] = []breadcrumb.Breadcrumb{}
	}

	if _, exists := pageSpecificData["MessageStatus"]; !exists {
		pageSpecificData["MessageStatus"] = r.URL.Query().Get("status")
		pageSpecificData["Message"] = r.URL.Query().Get("message")
	}

	return pageSpecificData
}
