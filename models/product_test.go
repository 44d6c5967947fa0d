package models

import (
	"encoding/json"
	"strings"
	"testing"

	"gotest.tools/assert"
)

func TestProductDecode(t *testing.T) {
	// seeded catalog shape: numeric id and price
	var p Product
	err := json.Unmarshal([]byte(`{"id":1,"title":"Essence Mascara","price":9.99}`), &p)
	assert.Equal(t, nil, err)
	assert.Equal(t, "1", p.Id.String())
	assert.Equal(t, "9.99", p.Price.String())

	// created-through-the-form shape: string id and price
	err = json.Unmarshal([]byte(`{"id":"9c4f","title":"Wooden Chair","price":"49"}`), &p)
	assert.Equal(t, nil, err)
	assert.Equal(t, "9c4f", p.Id.String())
	assert.Equal(t, "49", p.Price.String())

	// null price
	err = json.Unmarshal([]byte(`{"id":3,"title":"Lamp","price":null}`), &p)
	assert.Equal(t, nil, err)
	assert.Equal(t, "", p.Price.String())
}

func TestProductEncode(t *testing.T) {
	// numeric-looking price stays a number on the wire
	data, err := json.Marshal(Product{Id: "5", Title: "Lamp", Price: "12.5"})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(string(data), `"id":"5"`))
	assert.Equal(t, true, strings.Contains(string(data), `"price":12.5`))

	// free-form price gets quoted
	data, err = json.Marshal(Product{Id: "5", Title: "Lamp", Price: "about 10"})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(string(data), `"price":"about 10"`))

	// JSON literals that are not numbers stay quoted too
	data, err = json.Marshal(Product{Id: "5", Title: "Lamp", Price: "true"})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(string(data), `"price":"true"`))

	data, err = json.Marshal(Product{Id: "5", Title: "Lamp", Price: "null"})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(string(data), `"price":"null"`))

	data, err = json.Marshal(Product{Id: "5", Title: "Lamp", Price: "[1,2]"})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(string(data), `"price":"[1,2]"`))

	// number spellings JSON does not accept
	data, err = json.Marshal(Product{Id: "5", Title: "Lamp", Price: "NaN"})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(string(data), `"price":"NaN"`))

	// empty optionals dropped
	data, err = json.Marshal(Product{Id: "5", Title: "Lamp"})
	assert.Equal(t, nil, err)
	assert.Equal(t, false, strings.Contains(string(data), "price"))
	assert.Equal(t, false, strings.Contains(string(data), "thumbnail"))

	data, err = json.Marshal(ProductRequest{Title: "Lamp"})
	assert.Equal(t, nil, err)
	assert.Equal(t, `{"title":"Lamp"}`, string(data))
}

func TestPriceFloat64(t *testing.T) {
	v, err := Price("9.99").Float64()
	assert.Equal(t, nil, err)
	assert.Equal(t, 9.99, v)

	_, err = Price("gratis").Float64()
	assert.Equal(t, false, err == nil)
}
