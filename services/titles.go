package services

import "github.com/rpupo63/content-site-backend/models"

// SearchTitleLength is how many characters of the query appear in a search page title
const SearchTitleLength = 15

const homeTitle = "Home - "

func postTitle(p models.Post) string {
	return p.Title + " Post - "
}

func pageTitle(p models.Page) string {
	return p.Title + " Page - "
}

func authorTitle(u models.User) string {
	return "Posts by " + u.DisplayName() + " - "
}

func categoryTitle(c models.Category) string {
	return c.String() + " Category - "
}

func tagTitle(t models.Tag) string {
	return t.String() + " Tag - "
}

func searchTitle(query string) string {
	runes := []rune(query)
	if len(runes) > SearchTitleLength {
		runes = runes[:SearchTitleLength]
	}
	return string(runes) + " Search - "
}
