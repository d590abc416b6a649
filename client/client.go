// Package client serves the merge over HTTP for the web UI.
package client

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	_ "github.com/DefiantLabs/explorer-tax-cli/client/docs"
	"github.com/DefiantLabs/explorer-tax-cli/config"
	"github.com/DefiantLabs/explorer-tax-cli/csv"
	"github.com/DefiantLabs/explorer-tax-cli/csv/adapters/etherscan"
	csvParsers "github.com/DefiantLabs/explorer-tax-cli/csv/parsers"
	dbTypes "github.com/DefiantLabs/explorer-tax-cli/db"
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Server answers merge requests. DB is optional; when set every merge run is stored.
type Server struct {
	DB     *gorm.DB
	Chains map[string]etherscan.Chain
}

func NewRouter(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORSMiddleware())

	r.GET("/chains", s.GetChains)
	r.POST("/merge.csv", s.MergeCSV)
	r.GET("/runs/:id", s.GetMergeRun)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Probably want to lock CORs down later, will need to know the hostname of the UI server
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// UploadedFile is one explorer export sent inline.
type UploadedFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type MergeCSVRequest struct {
	Chain            string                  `json:"chain"`
	Format           string                  `json:"format"`
	StakingAddresses []string                `json:"stakingAddresses"`
	BannedTokens     []string                `json:"bannedTokens"`
	StartDate        *string                 `json:"startDate"` // can be null
	EndDate          *string                 `json:"endDate"`   // can be null
	Files            map[string]UploadedFile `json:"files"`     // keyed by txn, int, token or nft
}

// GetChains godoc
//
//	@Summary	List the chains whose explorer exports can be merged
//	@Produce	json
//	@Success	200	{array}	etherscan.Chain
//	@Router		/chains [get]
func (s *Server) GetChains(c *gin.Context) {
	chains := make([]etherscan.Chain, 0, len(s.Chains))
	for _, name := range config.ChainNames(s.Chains) {
		chains = append(chains, s.Chains[name])
	}
	c.JSON(http.StatusOK, chains)
}

// MergeCSV godoc
//
//	@Summary	Merge explorer exports into tax records
//	@Accept		json
//	@Produce	text/csv
//	@Param		request	body		MergeCSVRequest	true	"exports and output options"
//	@Success	200		{string}	string			"merged records as CSV"
//	@Failure	404		"no rows left in the date range"
//	@Failure	422		"invalid request or merge aborted"
//	@Router		/merge.csv [post]
func (s *Server) MergeCSV(c *gin.Context) {
	var requestBody MergeCSVRequest
	if err := c.BindJSON(&requestBody); err != nil {
		config.Log.Warn("Error processing request body", err)
		return
	}

	if requestBody.Format == "" {
		c.JSON(422, gin.H{"message": "Format is required"})
		return
	}
	if !csvParsers.IsParserKey(requestBody.Format) {
		c.JSON(422, gin.H{"message": "Unknown format " + requestBody.Format})
		return
	}
	if len(requestBody.Files) == 0 {
		c.JSON(422, gin.H{"message": "At least one export file is required"})
		return
	}

	job, err := s.mergeJob(requestBody)
	if err != nil {
		c.JSON(422, gin.H{"message": err.Error()})
		return
	}

	files := make(map[string]*ledger.DataFile, len(requestBody.Files))
	for sourceID, upload := range requestBody.Files {
		if !validSource(sourceID) {
			c.JSON(422, gin.H{"message": "Unknown export type " + sourceID})
			return
		}
		df, err := csv.LoadReader(strings.NewReader(upload.Content), upload.Name, sourceID, job.LoadOptions())
		if err != nil {
			c.JSON(422, gin.H{"message": err.Error()})
			return
		}
		files[sourceID] = df
	}

	out, err := csv.MergeFiles(job, files)
	if err != nil {
		config.Log.Warn("Merge aborted", err)
		c.JSON(422, gin.H{"message": err.Error()})
		return
	}

	if len(out.Rows) == 0 {
		c.JSON(404, gin.H{"message": "No transactions in the given exports"})
		return
	}

	if s.DB != nil {
		run := dbTypes.NewMergeRun(job.Chain.Name, job.Format, out.Result, out.Files)
		if err := dbTypes.PersistMergeRun(s.DB, &run); err != nil {
			config.Log.Error("Error storing merge run", err)
			_ = c.AbortWithError(500, errors.New("error storing merge run"))
			return
		}
		c.Header("X-Merge-Run", strconv.FormatUint(uint64(run.ID), 10))
	}

	buffer, err := csv.ToCsv(out.Rows, out.Headers)
	if err != nil {
		config.Log.Error("Error generating CSV", err)
		_ = c.AbortWithError(500, errors.New("error generating CSV"))
		return
	}
	c.Data(200, "text/csv", buffer.Bytes())
}

// GetMergeRun godoc
//
//	@Summary	Get a stored merge run with its records
//	@Produce	json
//	@Param		id	path		int	true	"merge run id"
//	@Success	200	{object}	db.MergeRun
//	@Failure	404	"not stored"
//	@Router		/runs/{id} [get]
func (s *Server) GetMergeRun(c *gin.Context) {
	if s.DB == nil {
		c.JSON(404, gin.H{"message": "Merge runs are not stored by this server"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(422, gin.H{"message": "Invalid merge run id"})
		return
	}

	run, err := dbTypes.GetMergeRun(s.DB, uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(404, gin.H{"message": "No merge run with the given id"})
		return
	}
	if err != nil {
		config.Log.Error("Error loading merge run", err)
		_ = c.AbortWithError(500, errors.New("error loading merge run"))
		return
	}
	c.JSON(200, run)
}

func (s *Server) mergeJob(req MergeCSVRequest) (csv.MergeJob, error) {
	chainName := req.Chain
	if chainName == "" {
		chainName = "ETH"
	}
	chain, err := config.GetChain(s.Chains, chainName)
	if err != nil {
		return csv.MergeJob{}, err
	}

	// We expect ISO 8601 dates in UTC
	var startDate, endDate string
	if req.StartDate != nil {
		startDate = *req.StartDate
	}
	if req.EndDate != nil {
		endDate = *req.EndDate
	}
	start, err := csv.ParseDate(startDate)
	if err != nil {
		return csv.MergeJob{}, err
	}
	end, err := csv.ParseDate(endDate)
	if err != nil {
		return csv.MergeJob{}, err
	}

	return csv.MergeJob{
		Chain:            chain,
		StakingAddresses: req.StakingAddresses,
		Banned:           config.BannedSet(req.BannedTokens),
		Format:           req.Format,
		StartDate:        start,
		EndDate:          end,
	}, nil
}

func validSource(sourceID string) bool {
	for _, id := range ledger.SourceOrder {
		if id == sourceID {
			return true
		}
	}
	return false
}
