package unimall

// Stock описывает остаток товара у поставщика: идентификатор, цену и количество.
type Stock struct {
	ID       int     `json:"id"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CatalogueItem описывает запись каталога поставщика с человекочитаемым названием.
type CatalogueItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Страница каталога в ответе productsCatalogue
type cataloguePage struct {
	Data []CatalogueItem `json:"data"`
}
