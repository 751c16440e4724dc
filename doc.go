// Package vecsense ranks a fixed legal corpus with several retrieval methods
// and trains per-embedding-model article classifiers, without the HTTP layer.
//
// The engine runs offline by default using the deterministic hashing
// embedder; plug in any provider with WithEmbedder.
//
//	eng, _ := vecsense.New(vecsense.WithTopK(3))
//	rep, _ := eng.Search(ctx, "Income tax deduction for education", vecsense.MethodHybrid)
//	for _, h := range rep.Hits {
//	    fmt.Println(h.ID, h.Score)
//	}
//
//	_, _ = eng.Train(ctx, vecsense.ModelBERT)
//	pred, _ := eng.Predict(ctx, "Central bank raises interest rates")
//	fmt.Println(pred.Consensus)
package vecsense
