package app

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/culturematch/culturematch/internal/command"
	"github.com/culturematch/culturematch/internal/datasources"
	"github.com/culturematch/culturematch/internal/datasources/milvus"
	"github.com/culturematch/culturematch/internal/datasources/mysql"
	"github.com/culturematch/culturematch/internal/datasources/pinecone"
	"github.com/culturematch/culturematch/internal/datasources/voyageai"
	"github.com/culturematch/culturematch/internal/transport/web/router"
	"github.com/culturematch/culturematch/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	repository, err := setupRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up repository: %w", err)
	}

	vectors, err := setupVectorRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up vector repository: %w", err)
	}

	embedder, err := setupEmbedder(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up embedder: %w", err)
	}

	authMiddleware, err := router.SetupAuth0Middleware(
		MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
		MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
	)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	updateVectorCmd := command.NewUpdateTasteVector(
		repository,
		embedder,
		vectors,
		DefaultUpdateTasteVectorConfig(),
	)

	matchingCmd := command.NewRunMatchingJob(
		vectors,
		vectors,
		repository,
		repository,
		repository,
		repository,
		repository,
		rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		DefaultMatchingConfig(),
	)

	httpRouter, err := router.MakeRouter(
		repository,
		router.Commands{
			RunMatchingJob:    matchingCmd,
			RespondToMatch:    command.NewRespondToMatch(repository),
			LogInteraction:    command.NewLogInteraction(repository, repository, updateVectorCmd),
			RemoveInteraction: command.NewRemoveInteraction(repository, updateVectorCmd),
			SubmitVibeCheck:   command.NewSubmitVibeCheck(repository, updateVectorCmd),
		},
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

// SetupVectorRefresh wires the commands the batch vector refresh worker
// needs, without the HTTP stack.
func SetupVectorRefresh(ctx context.Context) (*command.RefreshAllVectors, error) {
	repository, err := setupRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up repository: %w", err)
	}

	vectors, err := setupVectorRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up vector repository: %w", err)
	}

	embedder, err := setupEmbedder(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up embedder: %w", err)
	}

	updateVectorCmd := command.NewUpdateTasteVector(
		repository,
		embedder,
		vectors,
		DefaultUpdateTasteVectorConfig(),
	)

	return command.NewRefreshAllVectors(repository, updateVectorCmd), nil
}

func setupRepository(ctx context.Context) (datasources.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

func setupVectorRepository(ctx context.Context) (datasources.VectorRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "VECTOR_DRIVER"); driver {
	case "null":
		return datasources.NullVectorRepository{}, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	case "milvus":
		client, err := milvus.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "MILVUS_URI"),
			MustGetEnvAsString(ctx, "MILVUS_COLLECTION"),
			MustGetEnvAsInt(ctx, "EMBEDDING_DIMENSION"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to milvus: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown vector driver [%s]", driver)
	}
}

func setupEmbedder(ctx context.Context) (datasources.Embedder, error) {
	switch driver := MustGetEnvAsString(ctx, "EMBEDDER_DRIVER"); driver {
	case "null":
		return datasources.NullEmbedder{}, nil
	case "voyageai":
		apiKey := MustGetEnvAsString(ctx, "VOYAGEAI_API_KEY")
		model := MustGetEnvAsString(ctx, "VOYAGEAI_MODEL")
		dimension := MustGetEnvAsInt(ctx, "EMBEDDING_DIMENSION")
		return datasources.NewLazyEmbedder(func() (datasources.Embedder, error) {
			return voyageai.NewClient(apiKey, model, dimension), nil
		}), nil
	default:
		return nil, fmt.Errorf("unknown embedder driver [%s]", driver)
	}
}
