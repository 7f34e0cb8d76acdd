package domain

// Creative carrega as URLs de imagem do criativo de um anúncio
type Creative struct {
	ID           string `json:"id"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// AdWithCreative é a resposta de GET /{ad_id}?fields=creative{...}
type AdWithCreative struct {
	ID       string    `json:"id"`
	Creative *Creative `json:"creative"`
}

// PreviewsResponse é a resposta de GET /{ad_id}/previews; o body traz um
// iframe cujo src é a URL de pré-visualização
type PreviewsResponse struct {
	Data []Preview `json:"data"`
}

type Preview struct {
	Body string `json:"body"`
}

// CreativeInfo é o resultado consolidado do enriquecimento de um anúncio.
// Falhas viram valores vazios, nunca erros.
type CreativeInfo struct {
	ImageURL   string `json:"image_url"`
	PreviewURL string `json:"preview_url"`
}
