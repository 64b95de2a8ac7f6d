package middleware

import "encoding/json"

// Ключи JSON-ответа, в которых нижестоящий обработчик может вернуть токен.
var tokenKeys = []string{"access_token", "token"}

// outboundPayload - результат классификации исходящего JSON-тела.
// Ровно два варианта: распознанная выдача токена либо непрозрачное тело,
// которое должно пройти через мост байт-в-байт.
type outboundPayload interface {
	outbound()
}

// authGrant - JSON-объект, содержащий токен доступа под одним из известных
// ключей. fields хранит остальные поля объекта без ключей токена.
type authGrant struct {
	token  string
	fields map[string]json.RawMessage
}

// opaquePayload - любое другое тело: не объект, невалидный JSON,
// объект без токена, пустой или не строковый токен.
type opaquePayload struct{}

func (authGrant) outbound()     {}
func (opaquePayload) outbound() {}

// classifyPayload разбирает тело ответа и возвращает явный вариант,
// по которому ветвится исходящий мост. Токеном считается первое непустое
// строковое значение в порядке tokenKeys; при распознавании из тела
// удаляются все ключи токена, а не только выигравший.
func classifyPayload(body []byte) outboundPayload {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return opaquePayload{}
	}

	var token string
	for _, key := range tokenKeys {
		raw, ok := fields[key]
		if !ok {
			continue
		}

		var value string
		if err := json.Unmarshal(raw, &value); err != nil || value == "" {
			continue
		}

		token = value
		break
	}

	if token == "" {
		return opaquePayload{}
	}

	for _, key := range tokenKeys {
		delete(fields, key)
	}
	return authGrant{token: token, fields: fields}
}
