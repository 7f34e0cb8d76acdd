package cache

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// maxPlainKeyLength limita o tamanho da parte derivada da chave; acima disso
// ela vira um hash curto. O prefixo nunca é hasheado para a invalidação por
// padrão continuar funcionando.
const maxPlainKeyLength = 100

// BuildKey deriva uma chave determinística a partir do prefixo e dos
// argumentos da consulta. Entradas iguais produzem sempre a mesma chave,
// independente da ordem dos mapas.
func BuildKey(prefix string, args ...interface{}) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, normalize(arg))
	}

	derived := strings.Join(parts, ":")
	if len(derived) > maxPlainKeyLength {
		sum := md5.Sum([]byte(derived))
		derived = hex.EncodeToString(sum[:])[:16]
	}

	if derived == "" {
		return prefix
	}
	return prefix + ":" + derived
}

func normalize(arg interface{}) string {
	switch v := arg.(type) {
	case nil:
		return "nil"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format("2006-01-02")
	case []string:
		return strings.Join(v, ",")
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, normalize(item))
		}
		return strings.Join(parts, ",")
	case map[string]interface{}:
		// mapas são ordenados pela chave para garantir determinismo
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+"="+normalize(v[k]))
		}
		return strings.Join(parts, ",")
	default:
		// tipos não mapeados degradam para a etiqueta do tipo
		return fmt.Sprintf("%T", v)
	}
}

// MatchPattern responde se a chave casa com o padrão. Apenas o curinga `*`
// no final é suportado: "facebook:impressions*" casa qualquer sufixo.
func MatchPattern(key, pattern string) bool {
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(key, strings.TrimSuffix(pattern, "*"))
	}
	return key == pattern
}
