package client

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DefiantLabs/explorer-tax-cli/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wallet = "0x1111111111111111111111111111111111111111"

const txnsExport = `"Txhash","Blockno","UnixTimestamp","DateTime","From","To","ContractAddress","Value_IN(ETH)","Value_OUT(ETH)","CurrentValue @ $3000/Eth","TxnFee(ETH)","TxnFee(USD)","Historical $Price/Eth","Status","ErrCode","Method"
"0xswap","100","1650000000","2022-04-15 05:20:00","0x1111111111111111111111111111111111111111","0x7a250d5630b4cf539739df2c5dacb4c659f2488d","","0","0","0","0.01","30","3000","","","Swap Exact Tokens For ETH"
`

const tokensExport = `"Txhash","Blockno","UnixTimestamp","DateTime","From","To","TokenValue","USDValueDayOfTx","ContractAddress","TokenName","TokenSymbol"
"0xswap","100","1650000000","2022-04-15 05:20:00","0x1111111111111111111111111111111111111111","0x0d4a11d5eeaac28ec3f61d100daf4d40471f1852","100","100","0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa","Token A","TKA"
"0xswap","100","1650000000","2022-04-15 05:20:00","0x1111111111111111111111111111111111111111","0x0d4a11d5eeaac28ec3f61d100daf4d40471f1852","50","50","0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb","Token B","TKB"
`

const internalExport = `"Txhash","Blockno","UnixTimestamp","DateTime","ParentTxFrom","ParentTxTo","ParentTxETH_Value","From","TxTo","ContractAddress","Value_IN(ETH)","Value_OUT(ETH)","CurrentValue @ $3000/Eth","Historical $Price/Eth","Status","ErrCode","Type"
"0xswap","100","1650000000","2022-04-15 05:20:00","0x1111111111111111111111111111111111111111","0x7a250d5630b4cf539739df2c5dacb4c659f2488d","0","0x7a250d5630b4cf539739df2c5dacb4c659f2488d","0x1111111111111111111111111111111111111111","","1","0","3000","3000","0","","call"
`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(&Server{Chains: config.DefaultChains()})
}

func post(t *testing.T, r http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/merge.csv", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func swapRequest() MergeCSVRequest {
	return MergeCSVRequest{
		Chain:  "eth",
		Format: "records",
		Files: map[string]UploadedFile{
			"txn":   {Name: "export-" + wallet + ".csv", Content: txnsExport},
			"token": {Name: "export-tokenholdings-" + wallet + ".csv", Content: tokensExport},
			"int":   {Name: "export-internal-" + wallet + ".csv", Content: internalExport},
		},
	}
}

func TestMergeCSV(t *testing.T) {
	w := post(t, newTestRouter(t), swapRequest())

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Trade,0.5,ETH,100,TKA,0.005,ETH,0x11111111,2022-04-15T05:20:00 UTC,Swap Exact Tokens For ETH", lines[1])
	assert.Equal(t, "Trade,0.5,ETH,50,TKB,0.005,ETH,0x11111111,2022-04-15T05:20:00 UTC,Swap Exact Tokens For ETH", lines[2])
}

func TestMergeCSVBannedTokens(t *testing.T) {
	req := swapRequest()
	req.BannedTokens = []string{"TKB"}
	w := post(t, newTestRouter(t), req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Trade,1,ETH,100,TKA,0.01,ETH,0x11111111,2022-04-15T05:20:00 UTC,Swap Exact Tokens For ETH", lines[1])
}

func TestMergeCSVValidation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		mutate func(*MergeCSVRequest)
		code   int
	}{
		{"missing format", func(req *MergeCSVRequest) { req.Format = "" }, 422},
		{"unknown format", func(req *MergeCSVRequest) { req.Format = "turbotax" }, 422},
		{"no files", func(req *MergeCSVRequest) { req.Files = nil }, 422},
		{"unknown chain", func(req *MergeCSVRequest) { req.Chain = "solana" }, 422},
		{"bad start date", func(req *MergeCSVRequest) { s := "15/04/2022"; req.StartDate = &s }, 422},
		{"unknown export type", func(req *MergeCSVRequest) { req.Files["erc1155"] = UploadedFile{Content: tokensExport} }, 422},
		{"unrecognised header", func(req *MergeCSVRequest) { req.Files["txn"] = UploadedFile{Content: tokensExport} }, 422},
		{"nothing in range", func(req *MergeCSVRequest) { s := "2023-01-01"; req.StartDate = &s }, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := swapRequest()
			tt.mutate(&req)
			w := post(t, r, req)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
}

func TestMergeCSVBadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/merge.csv", strings.NewReader("{"))
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/merge.csv", nil)
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetChains(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/chains", nil)
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var chains []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chains))
	assert.Len(t, chains, 10)
}

func TestGetMergeRunWithoutDatabase(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/runs/1", nil)
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSwaggerDoc(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/merge.csv")
}
