package driver

const (
	SaveVerificationQuery = `
		MERGE (v:Verification {id: $id})
		SET v.claim = $claim,
			v.verdict = $verdict,
			v.confidence = $confidence,
			v.summary = $summary,
			v.model = $model,
			v.evidence_mode = $evidence_mode,
			v.created_at = $created_at
		RETURN v.id AS id
	`

	SaveEvidenceQuery = `
		MATCH (v:Verification {id: $verification_id})
		MERGE (d:Domain {name: $domain})
		SET d.credibility = $credibility
		CREATE (e:Evidence {url: $url, quote: $quote, credibility: $credibility})
		CREATE (v)-[:CITES {stance: $stance}]->(e)
		CREATE (e)-[:FROM]->(d)
		RETURN d.name AS name
	`

	GetVerificationQuery = `
		MATCH (v:Verification {id: $id})
		RETURN v.id AS id,
			v.claim AS claim,
			v.verdict AS verdict,
			v.confidence AS confidence,
			v.summary AS summary,
			v.model AS model,
			v.evidence_mode AS evidence_mode,
			v.created_at AS created_at
	`

	GetVerificationEvidenceQuery = `
		MATCH (v:Verification {id: $id})-[c:CITES]->(e:Evidence)
		RETURN e.url AS url, e.quote AS quote, e.credibility AS credibility, c.stance AS stance
	`

	GetRecentVerificationsQuery = `
		MATCH (v:Verification)
		RETURN v.id AS id,
			v.claim AS claim,
			v.verdict AS verdict,
			v.confidence AS confidence,
			v.summary AS summary,
			v.model AS model,
			v.evidence_mode AS evidence_mode,
			v.created_at AS created_at
		ORDER BY v.created_at DESC
		LIMIT $limit
	`

	GetDomainStatsQuery = `
		MATCH (d:Domain {name: $name})
		RETURN d.name AS name,
			d.credibility AS credibility,
			d.citations AS citations,
			d.supporting AS supporting,
			d.contradicting AS contradicting,
			d.last_seen AS last_seen
	`

	RefreshDomainStatsQuery = `
		MATCH (d:Domain)
		OPTIONAL MATCH (v:Verification)-[c:CITES]->(e:Evidence)-[:FROM]->(d)
		WITH d,
			count(e) AS citations,
			sum(CASE WHEN c.stance = 'supporting' THEN 1 ELSE 0 END) AS supporting,
			sum(CASE WHEN c.stance = 'contradicting' THEN 1 ELSE 0 END) AS contradicting,
			max(v.created_at) AS last_seen
		SET d.citations = citations,
			d.supporting = supporting,
			d.contradicting = contradicting,
			d.last_seen = last_seen
		RETURN count(d) AS domains
	`
)
