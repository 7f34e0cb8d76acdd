package facebook

import (
	"context"
	"fmt"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/adsight/bi-ads-api/infrastructure/cache"
	fbdomain "github.com/adsight/bi-ads-api/infrastructure/integrator/facebook/domain"
	"github.com/adsight/bi-ads-api/infrastructure/integrator/facebook/fbclient"
	"github.com/adsight/bi-ads-api/internal/config"
	"github.com/adsight/bi-ads-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const creativeCacheMaxEntries = 5000

// CreativeResolver enriquece anúncios com imagem e preview do criativo.
// Resultados (inclusive negativos) ficam num cache TTL local para que
// janelas longas não repitam lookups do mesmo anúncio. Falhas individuais
// viram valores vazios: o enriquecimento nunca derruba a sincronização.
type CreativeResolver struct {
	client        fbclient.Client
	cache         *cache.MemoryCache
	batchSize     int
	maxWorkers    int
	useBatchAPI   bool
	enablePreview bool
}

func NewCreativeResolver(client fbclient.Client, syncCfg config.FacebookSync) *CreativeResolver {
	ttl := time.Duration(syncCfg.CreativeCacheTTL) * time.Second
	if ttl <= 0 {
		ttl = time.Hour
	}

	batchSize := syncCfg.BatchSize
	if batchSize <= 0 || batchSize > 50 {
		batchSize = 50
	}

	maxWorkers := syncCfg.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 8
	}

	return &CreativeResolver{
		client:        client,
		cache:         cache.NewMemoryCache(creativeCacheMaxEntries, ttl),
		batchSize:     batchSize,
		maxWorkers:    maxWorkers,
		useBatchAPI:   syncCfg.UseBatchAPI,
		enablePreview: syncCfg.EnablePreview,
	}
}

// Resolve devolve um mapa com exatamente uma entrada por ad_id de entrada.
// IDs repetidos são deduplicados antes de qualquer lookup.
func (r *CreativeResolver) Resolve(ctx context.Context, adIDs []string) map[string]fbdomain.CreativeInfo {
	results := make(map[string]fbdomain.CreativeInfo, len(adIDs))

	unique := make([]string, 0, len(adIDs))
	seen := make(map[string]bool, len(adIDs))
	for _, id := range adIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	// Primeiro o cache, inclusive resultados negativos
	missing := make([]string, 0, len(unique))
	for _, id := range unique {
		if info, ok := r.cachedInfo(id); ok {
			results[id] = info
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return results
	}

	log.L.WithFields(log.Fields{
		"platform": "facebook",
		"records":  len(missing),
	}).Debugf("Enriquecendo criativos: %d no cache, %d a buscar", len(unique)-len(missing), len(missing))

	var fetched map[string]fbdomain.CreativeInfo
	if r.useBatchAPI {
		fetched = r.resolveBatched(ctx, missing)
	} else {
		fetched = r.resolveConcurrent(ctx, missing)
	}

	for _, id := range missing {
		info := fetched[id] // ausente vira o valor zero, que também é cacheado
		r.storeInfo(id, info)
		results[id] = info
	}

	return results
}

func (r *CreativeResolver) cachedInfo(adID string) (fbdomain.CreativeInfo, bool) {
	raw, ok := r.cache.Get(cacheKey(adID))
	if !ok {
		return fbdomain.CreativeInfo{}, false
	}

	var info fbdomain.CreativeInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return fbdomain.CreativeInfo{}, false
	}
	return info, true
}

func (r *CreativeResolver) storeInfo(adID string, info fbdomain.CreativeInfo) {
	raw, err := json.Marshal(info)
	if err != nil {
		return
	}
	r.cache.Set(cacheKey(adID), raw)
}

func cacheKey(adID string) string {
	return "creative:" + adID
}

// resolveConcurrent busca cada anúncio individualmente com um pool limitado
// de workers
func (r *CreativeResolver) resolveConcurrent(ctx context.Context, adIDs []string) map[string]fbdomain.CreativeInfo {
	results := make(map[string]fbdomain.CreativeInfo, len(adIDs))

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, r.maxWorkers)

	for _, adID := range adIDs {
		wg.Add(1)
		sem <- struct{}{}

		go func(adID string) {
			defer wg.Done()
			defer func() { <-sem }()

			info := r.fetchOne(ctx, adID)

			mu.Lock()
			results[adID] = info
			mu.Unlock()
		}(adID)
	}

	wg.Wait()
	return results
}

func (r *CreativeResolver) fetchOne(ctx context.Context, adID string) fbdomain.CreativeInfo {
	info := fbdomain.CreativeInfo{}

	creative, err := r.client.GetAdCreative(ctx, adID)
	if err != nil {
		log.L.WithError(err).Warnf("Falha ao buscar criativo do anúncio %s", adID)
	} else if creative != nil {
		info.ImageURL = creative.ImageURL
		if info.ImageURL == "" {
			info.ImageURL = creative.ThumbnailURL
		}
	}

	if r.enablePreview {
		preview, err := r.client.GetAdPreview(ctx, adID)
		if err != nil {
			log.L.WithError(err).Warnf("Falha ao buscar preview do anúncio %s", adID)
		} else {
			info.PreviewURL = preview
		}
	}

	return info
}

// resolveBatched usa a API de lote do Graph: cada anúncio vira uma
// sub-requisição de criativo (e outra de preview), casadas por posição
func (r *CreativeResolver) resolveBatched(ctx context.Context, adIDs []string) map[string]fbdomain.CreativeInfo {
	results := make(map[string]fbdomain.CreativeInfo, len(adIDs))

	for start := 0; start < len(adIDs); start += r.batchSize {
		end := start + r.batchSize
		if end > len(adIDs) {
			end = len(adIDs)
		}
		chunk := adIDs[start:end]

		requests := make([]fbdomain.BatchRequest, 0, len(chunk))
		for _, adID := range chunk {
			requests = append(requests, fbdomain.BatchRequest{
				Method:      "GET",
				RelativeURL: fmt.Sprintf("%s?fields=creative{id,image_url,thumbnail_url}", adID),
			})
		}

		responses, err := r.client.ExecuteBatch(ctx, requests)
		if err != nil {
			log.L.WithError(err).Warnf("Falha no lote de criativos (%d anúncios)", len(chunk))
			continue
		}

		for i, resp := range responses {
			adID := chunk[i]
			info := results[adID]

			if resp.Code != 200 {
				log.L.Warnf("Sub-requisição de criativo do anúncio %s devolveu %d", adID, resp.Code)
			} else {
				var ad fbdomain.AdWithCreative
				if err := json.Unmarshal([]byte(resp.Body), &ad); err == nil && ad.Creative != nil {
					info.ImageURL = ad.Creative.ImageURL
					if info.ImageURL == "" {
						info.ImageURL = ad.Creative.ThumbnailURL
					}
				}
			}

			results[adID] = info
		}

		if r.enablePreview {
			r.batchPreviews(ctx, chunk, results)
		}
	}

	return results
}

func (r *CreativeResolver) batchPreviews(ctx context.Context, chunk []string, results map[string]fbdomain.CreativeInfo) {
	requests := make([]fbdomain.BatchRequest, 0, len(chunk))
	for _, adID := range chunk {
		requests = append(requests, fbdomain.BatchRequest{
			Method:      "GET",
			RelativeURL: fmt.Sprintf("%s/previews?ad_format=DESKTOP_FEED_STANDARD", adID),
		})
	}

	responses, err := r.client.ExecuteBatch(ctx, requests)
	if err != nil {
		log.L.WithError(err).Warnf("Falha no lote de previews (%d anúncios)", len(chunk))
		return
	}

	for i, resp := range responses {
		adID := chunk[i]
		if resp.Code != 200 {
			continue
		}

		var previews fbdomain.PreviewsResponse
		if err := json.Unmarshal([]byte(resp.Body), &previews); err != nil || len(previews.Data) == 0 {
			continue
		}

		info := results[adID]
		info.PreviewURL = fbclient.ExtractPreviewURL(previews.Data[0].Body)
		results[adID] = info
	}
}
